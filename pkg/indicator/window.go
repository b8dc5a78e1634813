package indicator

import (
	"github.com/quantkit/bricks/pkg/types"
)

func validateWindow(name string, window int) error {
	if window <= 0 {
		return types.InvalidConfigurationError("%s: window must be positive, %d given", name, window)
	}
	return nil
}
