package tsv

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantkit/bricks/pkg/fixedpoint"
	"github.com/quantkit/bricks/pkg/types"
)

type nopCloser struct {
	*bytes.Buffer
}

func (nopCloser) Close() error { return nil }

func testBar(t *testing.T) types.RenkoBar {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	bar, err := types.NewRenkoBar("BTCUSDT", start, fixedpoint.NewFromInt(10), fixedpoint.NewFromInt(100), 2)
	require.NoError(t, err)
	bar.Update(start.Add(time.Minute), fixedpoint.NewFromInt(112), 3)
	require.True(t, bar.Closed)
	return *bar
}

func TestWriter_WriteRow(t *testing.T) {
	buf := nopCloser{Buffer: &bytes.Buffer{}}
	w := NewWriter(buf)

	bar := testBar(t)
	require.NoError(t, w.WriteRow(BrickRow{Bar: bar}))
	require.NoError(t, w.WriteRow(BrickRow{Bar: bar, BandReady: true, Middle: 105, Upper: 107.5, Lower: 102.5}))
	require.NoError(t, w.Close())

	want := "symbol\tstart\tend\tdirection\topen\thigh\tlow\tclose\tvolume\tready\tmiddle\tupper\tlower\n" +
		"BTCUSDT\t2024-01-02T03:04:05Z\t2024-01-02T03:05:05Z\tUP\t100\t110\t100\t110\t5\tfalse\t\t\t\n" +
		"BTCUSDT\t2024-01-02T03:04:05Z\t2024-01-02T03:05:05Z\tUP\t100\t110\t100\t110\t5\ttrue\t105\t107.5\t102.5\n"
	assert.Equal(t, want, buf.String())
}

func TestAppendWriterFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bricks.tsv")
	bar := testBar(t)

	for i := 0; i < 2; i++ {
		w, err := AppendWriterFile(filename)
		require.NoError(t, err)
		require.NoError(t, w.WriteRow(BrickRow{Bar: bar}))
		require.NoError(t, w.Close())
	}

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(data, []byte("\n")), "header is written once")
}
