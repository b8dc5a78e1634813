package csvsource

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/quantkit/bricks/pkg/types"
)

// ReadTicks decodes all rows of a tick file.
func ReadTicks(r io.Reader, symbol string) ([]types.Tick, error) {
	var rows []*CsvTick
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}

	ticks := make([]types.Tick, 0, len(rows))
	for i, row := range rows {
		tick, err := row.Tick(symbol)
		if err != nil {
			// header is line 1
			return ticks, errors.Wrapf(err, "line %d", i+2)
		}
		ticks = append(ticks, tick)
	}

	return ticks, nil
}

// ReadTicksFromCSV reads a single .csv file or all the .csv files in a directory,
// returning the ticks sorted by time.
func ReadTicksFromCSV(path, symbol string) ([]types.Tick, error) {
	var ticks []types.Tick

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()

		newTicks, err := ReadTicks(file, symbol)
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}

		log.Debugf("loaded %d ticks from %s", len(newTicks), path)
		ticks = append(ticks, newTicks...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(ticks, func(i, j int) bool {
		return ticks[i].Time.Before(ticks[j].Time)
	})

	return ticks, nil
}

// StreamTicks sends the ticks to the channel and closes it when done or when the
// context is cancelled.
func StreamTicks(ctx context.Context, ticks []types.Tick) <-chan types.Tick {
	c := make(chan types.Tick, 100)
	go func() {
		defer close(c)
		for _, tick := range ticks {
			select {
			case <-ctx.Done():
				return
			case c <- tick:
			}
		}
	}()
	return c
}
