package indicator

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/quantkit/bricks/pkg/types"
)

func Test_ParseMovingAverageType(t *testing.T) {
	tests := []struct {
		input string
		want  MovingAverageType
	}{
		{input: "simple", want: MovingAverageTypeSimple},
		{input: "SMA", want: MovingAverageTypeSimple},
		{input: "exponential", want: MovingAverageTypeExponential},
		{input: "ema", want: MovingAverageTypeExponential},
		{input: "Weighted", want: MovingAverageTypeWeighted},
		{input: " wilders ", want: MovingAverageTypeWilders},
		{input: "smma", want: MovingAverageTypeWilders},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMovingAverageType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMovingAverageType("hull")
	assert.True(t, errors.Is(err, types.ErrInvalidConfiguration))
}

func Test_MovingAverageType_AsIndicator(t *testing.T) {
	tests := []struct {
		maType MovingAverageType
		want   Node
	}{
		{maType: MovingAverageTypeSimple, want: &SMA{}},
		{maType: MovingAverageTypeExponential, want: &EMA{}},
		{maType: MovingAverageTypeWeighted, want: &WMA{}},
		{maType: MovingAverageTypeWilders, want: &RMA{}},
	}

	for _, tt := range tests {
		t.Run(tt.maType.String(), func(t *testing.T) {
			node, err := tt.maType.AsIndicator("mid", 10)
			require.NoError(t, err)
			assert.IsType(t, tt.want, node)
			assert.Equal(t, "mid", node.Name())
		})
	}

	_, err := MovingAverageType(42).AsIndicator("mid", 10)
	assert.True(t, errors.Is(err, types.ErrInvalidConfiguration))
	assert.False(t, MovingAverageType(42).Valid())

	_, err = MovingAverageTypeSimple.AsIndicator("mid", 0)
	assert.True(t, errors.Is(err, types.ErrInvalidConfiguration))
}

func Test_MovingAverageType_Unmarshal(t *testing.T) {
	var conf struct {
		Type MovingAverageType `json:"type" yaml:"type"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"type":"ema"}`), &conf))
	assert.Equal(t, MovingAverageTypeExponential, conf.Type)

	require.NoError(t, yaml.Unmarshal([]byte("type: weighted\n"), &conf))
	assert.Equal(t, MovingAverageTypeWeighted, conf.Type)

	assert.Error(t, yaml.Unmarshal([]byte("type: median\n"), &conf))

	out, err := json.Marshal(MovingAverageTypeWilders)
	require.NoError(t, err)
	assert.Equal(t, `"wilders"`, string(out))
}
