package config

import (
	"strings"

	"github.com/quantkit/bricks/pkg/envvar"
)

// ApplyEnv overrides the refeed options of every session from the environment:
//
//	BRICKS_REFEED, BRICKS_MAX_REFEED             apply to all sessions
//	BRICKS_<SYMBOL>_REFEED, BRICKS_<SYMBOL>_BRICK_SIZE apply to one session
//
// The result is validated again.
func (c *Config) ApplyEnv() error {
	for i := range c.Sessions {
		session := &c.Sessions[i]
		envvar.SetBool("BRICKS_REFEED", &session.Refeed)
		envvar.SetInt("BRICKS_MAX_REFEED", &session.MaxRefeed)

		prefix := "BRICKS_" + strings.ToUpper(session.Symbol) + "_"
		envvar.SetBool(prefix+"REFEED", &session.Refeed)
		if brickSize, ok := envvar.Value(prefix + "BRICK_SIZE"); ok {
			session.BrickSize = brickSize
		}
	}

	return c.Validate()
}
