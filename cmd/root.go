package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/wtrack/internal/config"
	"github.com/theirongolddev/wtrack/internal/model"
	"github.com/theirongolddev/wtrack/internal/tracker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagFile    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wtrack",
	Short: "Personal weight tracker",
	Long:  "Log dated weight measurements, view stats, earn Blipcoins for weight lost, and track BMI and a goal weight.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	RunE:          runMenu,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Weights file (default from config or $"+config.EnvDataFile+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging to stderr")
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// dataFile resolves the ledger path: --file, then env/config/default.
func dataFile() string {
	if flagFile != "" {
		return flagFile
	}
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("config unreadable, using defaults")
	}
	return config.DataFile(cfg)
}

// openTracker is the shared loading path used by all commands.
func openTracker() (*tracker.Tracker, error) {
	path := dataFile()
	tr, err := tracker.Open(path, tracker.WithLogger(log.Logger))
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// parseDateArg accepts YYYY-MM-DD or "today".
func parseDateArg(s string) (time.Time, error) {
	if strings.EqualFold(s, "today") {
		return model.Day(time.Now()), nil
	}
	return model.ParseDate(s)
}
