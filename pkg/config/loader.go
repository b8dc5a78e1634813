package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/quantkit/bricks/pkg/fixedpoint"
	"github.com/quantkit/bricks/pkg/indicator"
	"github.com/quantkit/bricks/pkg/types"
)

const DefaultBollWindow = 20
const DefaultBollK = 2.0

type BollConfig struct {
	Window            int                         `json:"window" yaml:"window"`
	K                 float64                     `json:"k" yaml:"k"`
	MovingAverageType indicator.MovingAverageType `json:"movingAverageType" yaml:"movingAverageType"`
	StdDevType        indicator.StdDevType        `json:"stdDevType" yaml:"stdDevType"`
}

// Session is the configuration of one symbol: how its ticks are bricked and which
// bands are computed over the brick closes.
type Session struct {
	Symbol    string           `json:"symbol" yaml:"symbol"`
	BrickSize fixedpoint.Value `json:"brickSize" yaml:"brickSize"`

	// Refeed closes one brick per brick width when a tick jumps over several bricks
	Refeed    bool `json:"refeed" yaml:"refeed"`
	MaxRefeed int  `json:"maxRefeed,omitempty" yaml:"maxRefeed,omitempty"`

	Boll BollConfig `json:"boll" yaml:"boll"`
}

func newSession() *Session {
	return &Session{
		Boll: BollConfig{
			Window:            DefaultBollWindow,
			K:                 DefaultBollK,
			MovingAverageType: indicator.MovingAverageTypeSimple,
			StdDevType:        indicator.StdDevTypePopulation,
		},
	}
}

// Validate reports every problem of the session at once.
func (s *Session) Validate() (err error) {
	if s.Symbol == "" {
		err = multierr.Append(err, types.InvalidConfigurationError("symbol is required"))
	}

	if s.BrickSize.Sign() <= 0 {
		err = multierr.Append(err, types.InvalidConfigurationError("%s: brickSize must be positive, %s given", s.Symbol, s.BrickSize.String()))
	}

	if s.MaxRefeed < 0 {
		err = multierr.Append(err, types.InvalidConfigurationError("%s: maxRefeed can not be negative", s.Symbol))
	}

	if s.Boll.Window <= 0 {
		err = multierr.Append(err, types.InvalidConfigurationError("%s: boll window must be positive, %d given", s.Symbol, s.Boll.Window))
	}

	if !s.Boll.MovingAverageType.Valid() {
		err = multierr.Append(err, types.InvalidConfigurationError("%s: unknown moving average type %s", s.Symbol, s.Boll.MovingAverageType))
	}

	return err
}

type Config struct {
	Sessions []Session `json:"sessions" yaml:"sessions"`
}

func (c *Config) Validate() (err error) {
	if len(c.Sessions) == 0 {
		return types.InvalidConfigurationError("no sessions defined")
	}

	seen := make(map[string]struct{})
	for i := range c.Sessions {
		session := &c.Sessions[i]
		if _, dup := seen[session.Symbol]; dup {
			err = multierr.Append(err, types.InvalidConfigurationError("duplicated session %s", session.Symbol))
		}
		seen[session.Symbol] = struct{}{}

		err = multierr.Append(err, session.Validate())
	}
	return err
}

// Session returns the session of the given symbol.
func (c *Config) Session(symbol string) (*Session, bool) {
	for i := range c.Sessions {
		if c.Sessions[i].Symbol == symbol {
			return &c.Sessions[i], true
		}
	}
	return nil, false
}

type Stash map[string]interface{}

func loadStash(config []byte) (Stash, error) {
	stash := make(Stash)
	if err := yaml.Unmarshal(config, stash); err != nil {
		return nil, err
	}

	return stash, nil
}

func Load(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	config, err := LoadFromBytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configFile)
	}
	return config, nil
}

// LoadFromBytes parses and validates the YAML config. Keys absent from a session keep
// their defaults, keys present with invalid values are rejected.
func LoadFromBytes(data []byte) (*Config, error) {
	stash, err := loadStash(data)
	if err != nil {
		return nil, err
	}

	sessions, err := loadSessions(stash)
	if err != nil {
		return nil, err
	}

	config := &Config{Sessions: sessions}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func loadSessions(stash Stash) (sessions []Session, err error) {
	sessionsConf, ok := stash["sessions"]
	if !ok {
		return sessions, nil
	}

	configList, ok := sessionsConf.([]interface{})
	if !ok {
		return nil, errors.New("expecting list in sessions")
	}

	for _, entry := range configList {
		sessionStash, ok := entry.(Stash)
		if !ok {
			return nil, errors.Errorf("session config should be a map, given: %T %+v", entry, entry)
		}

		session := newSession()
		if err := reUnmarshal(sessionStash, session); err != nil {
			return nil, err
		}

		sessions = append(sessions, *session)
	}

	return sessions, nil
}

// reUnmarshal decodes the generic YAML map through JSON so the field types can reuse
// their JSON unmarshalers.
func reUnmarshal(conf interface{}, target interface{}) error {
	plain, err := json.Marshal(conf)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plain, target); err != nil {
		return errors.Wrapf(err, "json parsing error, given payload: %s", plain)
	}

	return nil
}
