package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftlog/internal/app"
	"github.com/misterclayt0n/liftlog/internal/config"
	"github.com/misterclayt0n/liftlog/internal/logging"
	"github.com/misterclayt0n/liftlog/internal/stats"
	"github.com/misterclayt0n/liftlog/internal/storage"
	"github.com/misterclayt0n/liftlog/internal/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var (
	configPath string
	timeFrame  string
	fromDay    string
	toDay      string

	cfg   *config.Config
	slots storage.SlotStore
	state *app.State
	loc   *time.Location
)

var rootCmd = &cobra.Command{
	Use:           "liftlog",
	Short:         "Workout log with per-exercise progress stats",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.Log.File,
			LogToStdout:   cfg.Log.ToStdout,
			LogLevel:      cfg.Log.Level,
			LogFormatJSON: cfg.Log.JSON,
		})

		loc, err = utils.LoadLocation(cfg.Display.Timezone)
		if err != nil {
			return err
		}

		if skipsState(cmd) {
			return nil
		}

		sel, err := selectionFromFlags(cmd)
		if err != nil {
			return err
		}

		slots, err = storage.Open(cmd.Context(), cfg.Storage)
		if err != nil {
			slots = nil
			return err
		}
		state, err = app.Load(cmd.Context(), slots, stats.Selection{Mode: stats.ModeAll})
		if err != nil {
			return err
		}
		state.UseLocation(loc)
		return state.SetTimeFrame(sel)
	},
}

// skipsState reports whether a command runs without opening the store.
func skipsState(cmd *cobra.Command) bool {
	return cmd.Annotations["state"] == "none"
}

// selectionFromFlags builds the timeframe from --timeframe/--from/--to, falling back
// to the configured default. Passing --from or --to implies a custom range.
func selectionFromFlags(cmd *cobra.Command) (stats.Selection, error) {
	mode := cfg.Display.DefaultTimeFrame
	if cmd.Flags().Changed("timeframe") {
		mode = timeFrame
	}
	if fromDay != "" || toDay != "" {
		mode = string(stats.ModeCustom)
	}
	return parseSelection(mode, fromDay, toDay, loc)
}

func parseSelection(mode, from, to string, loc *time.Location) (stats.Selection, error) {
	sel := stats.Selection{Mode: stats.ParseMode(mode)}
	if sel.Mode != stats.ModeCustom {
		return sel, nil
	}
	if from == "" && to == "" {
		return sel, nil
	}
	if from == "" || to == "" {
		return sel, &app.ValidationError{Field: "date range", Reason: "custom timeframe needs both --from and --to"}
	}

	start, err := utils.ParseDay(from, loc)
	if err != nil {
		return sel, &app.ValidationError{Field: "from", Reason: err.Error()}
	}
	end, err := utils.ParseDay(to, loc)
	if err != nil {
		return sel, &app.ValidationError{Field: "to", Reason: err.Error()}
	}
	sel.Custom = &stats.Period{Start: utils.StartOfDay(start), End: utils.EndOfDay(end)}
	return sel, nil
}

func Execute() error {
	err := rootCmd.Execute()
	if slots != nil {
		err = multierr.Append(err, slots.Close())
		slots = nil
	}

	// A stale reference is a warning, not a failure.
	var indexErr *storage.IndexError
	if errors.As(err, &indexErr) {
		log.WithError(err).Warn("record reference out of date")
		fmt.Fprintln(os.Stderr, color.New(color.FgYellow).Sprintf("⚠ %s. Run `liftlog list` to see current positions.", indexErr))
		return nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (default ~/.config/liftlog/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&timeFrame, "timeframe", "t", "", "Timeframe: lastWorkout, lastWeek, lastMonth, custom or all")
	rootCmd.PersistentFlags().StringVar(&fromDay, "from", "", "Start day of a custom timeframe (e.g. 2025-02-07 or 07/02/25)")
	rootCmd.PersistentFlags().StringVar(&toDay, "to", "", "End day of a custom timeframe, inclusive")
}
