package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/quantkit/bricks/pkg/cmd/cmdutil"
	"github.com/quantkit/bricks/pkg/config"
	"github.com/quantkit/bricks/pkg/data/tsv"
	"github.com/quantkit/bricks/pkg/datasource/csvsource"
	"github.com/quantkit/bricks/pkg/replay"
	"github.com/quantkit/bricks/pkg/style"
	"github.com/quantkit/bricks/pkg/types"
)

// go run ./cmd/bricks replay --config bricks.yaml --input ticks.csv --symbol BTCUSDT
var ReplayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replay ticks from csv files into renko bricks and bollinger bands",
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		if v := viper.GetString("config"); v != "" {
			configFile = v
		}

		conf, err := config.Load(configFile)
		if err != nil {
			return err
		}

		if err := conf.ApplyEnv(); err != nil {
			return err
		}

		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}
		if input == "" {
			return fmt.Errorf("--input option is required")
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}
		if symbol == "" {
			symbol = conf.Sessions[0].Symbol
		}

		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		var sessionConfigs []config.Session
		if all {
			sessionConfigs = conf.Sessions
		} else {
			sessionConfig, ok := conf.Session(symbol)
			if !ok {
				return fmt.Errorf("session %s is not defined in %s", symbol, configFile)
			}
			sessionConfigs = append(sessionConfigs, *sessionConfig)
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		showProgress, err := cmd.Flags().GetBool("progress")
		if err != nil {
			return err
		}

		ticks, err := csvsource.ReadTicksFromCSV(input, symbol)
		if err != nil {
			return err
		}

		var bar *pb.ProgressBar
		if showProgress {
			bar = pb.Full.Start(len(ticks) * len(sessionConfigs))
			bar.SetTemplateString(`{{ string . "symbol" | green}} | {{counters . }} {{bar . }} {{percent . }} {{etime . }}`)
			bar.Set("symbol", strings.Join(sessionSymbols(sessionConfigs), ","))
		}

		multi := len(sessionConfigs) > 1
		var sessions []*replay.Session
		for _, sessionConfig := range sessionConfigs {
			session, err := replay.NewSession(sessionConfig)
			if err != nil {
				return err
			}

			if output != "" {
				filename := sessionFilename(output, session.Config.Symbol, multi)
				writer, err := tsv.NewWriterFile(filename)
				if err != nil {
					return err
				}
				defer func() {
					if err := writer.Close(); err != nil {
						log.WithError(err).Errorf("can not close %s", filename)
					}
				}()
				session.SetWriter(writer)
			}

			if bar != nil {
				session.OnTick(func(tick types.Tick) { bar.Increment() })
			}

			sessions = append(sessions, session)
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		go func() {
			if sig := cmdutil.WaitForSignal(ctx, syscall.SIGINT, syscall.SIGTERM); sig != nil {
				cancel()
			}
		}()

		eg, egCtx := errgroup.WithContext(ctx)
		for _, session := range sessions {
			session := session
			eg.Go(func() error {
				return session.Run(egCtx, csvsource.StreamTicks(egCtx, ticks))
			})
		}

		err = eg.Wait()
		if bar != nil {
			bar.Finish()
		}
		if errors.Is(err, context.Canceled) {
			log.Warn("replay cancelled, printing the partial report")
		} else if err != nil {
			return err
		}

		rows, err := cmd.Flags().GetInt("rows")
		if err != nil {
			return err
		}

		plain, err := cmd.Flags().GetBool("plain")
		if err != nil {
			return err
		}

		tableStyle := style.NewDefaultTableStyle()
		if plain {
			color.NoColor = true
			tableStyle = style.NewPlainTableStyle()
		}

		reportFile, err := cmd.Flags().GetString("json")
		if err != nil {
			return err
		}

		chartFile, err := cmd.Flags().GetString("chart")
		if err != nil {
			return err
		}

		for _, session := range sessions {
			r := session.Report
			r.Print(cmd.OutOrStdout(), tableStyle, rows)

			if reportFile != "" {
				filename := sessionFilename(reportFile, r.Symbol, multi)
				if err := r.WriteJSON(filename); err != nil {
					return err
				}
				log.Infof("report written to %s", filename)
			}

			if chartFile != "" {
				filename := sessionFilename(chartFile, r.Symbol, multi)
				if err := r.WriteBandChart(filename); err != nil {
					log.WithError(err).Warnf("can not draw the bands of %s", r.Symbol)
					continue
				}
				log.Infof("chart written to %s", filename)
			}
		}

		return nil
	},
}

// sessionFilename inserts the symbol before the extension when several sessions
// share one output flag: bricks.tsv -> bricks_BTCUSDT.tsv
func sessionFilename(filename, symbol string, multi bool) string {
	if !multi {
		return filename
	}

	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "_" + symbol + ext
}

func sessionSymbols(sessions []config.Session) (symbols []string) {
	for _, s := range sessions {
		symbols = append(symbols, s.Symbol)
	}
	return symbols
}

func init() {
	ReplayCmd.Flags().String("input", "", "the csv file or the directory of csv files with the time,price,volume[,symbol] columns")
	ReplayCmd.Flags().String("symbol", "", "the session to replay, defaults to the first session of the config. rows without a symbol column belong to it")
	ReplayCmd.Flags().Bool("all", false, "replay all sessions of the config concurrently")
	ReplayCmd.Flags().String("output", "", "write the closed bricks and the bands as tsv to this file")
	ReplayCmd.Flags().String("json", "", "write the report as json to this file")
	ReplayCmd.Flags().String("chart", "", "draw the brick closes and the bands as png to this file")
	ReplayCmd.Flags().Int("rows", 20, "the number of latest bricks to print, 0 prints all")
	ReplayCmd.Flags().Bool("plain", false, "print without colors")
	ReplayCmd.Flags().Bool("progress", false, "show the replay progress")
	RootCmd.AddCommand(ReplayCmd)
}
