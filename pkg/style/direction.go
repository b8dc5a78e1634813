package style

import (
	"github.com/fatih/color"

	"github.com/quantkit/bricks/pkg/types"
)

var UpArrow = "▲"
var DownArrow = "▼"

var upColor = color.New(color.FgGreen)
var downColor = color.New(color.FgRed)

// DirectionString renders a brick direction with an arrow, green for up and red
// for down. Colors are dropped when color.NoColor is set.
func DirectionString(direction types.BrickDirection) string {
	switch direction {
	case types.BrickDirectionUp:
		return upColor.Sprint(UpArrow + " " + direction.String())
	case types.BrickDirectionDown:
		return downColor.Sprint(DownArrow + " " + direction.String())
	}
	return direction.String()
}
