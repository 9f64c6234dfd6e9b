package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/wqsuite/internal/cliconfig"
	"github.com/bft-labs/wqsuite/internal/tui"
	"github.com/bft-labs/wqsuite/pkg/log"
	"github.com/bft-labs/wqsuite/pkg/wqsuite"
)

const helpDescription = `
Check water-quality lab results against drinking-water standards and draft
water supply proposals from population growth.

Highlights:
  - Build a batch of lab measurements, fix or drop rows, then analyze them all.
  - Every analysis and proposal is saved as a PDF in the output directory.
  - Override the built-in limits with a TOML standards file; edits are
    picked up live with --watch-standards.
  - Configure via file, env (WQSUITE_*), or flags.
`

var longHelp = "wqsuite: Water Quality Suite\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  wqsuite
  wqsuite analyze --param pH=7.2 --param Turbidity=4
  wqsuite propose --name "Hill Village" --community village --population 1200 --growth 2.5 --source rainwater --years 15
  wqsuite params --standards-file ./standards.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return wqsuite.Version + "-dev"
}

func main() {
	console := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
	if err := newRootCmd().Execute(); err != nil {
		console.Error("wqsuite", log.Err(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "wqsuite",
		Short:         "Water quality compliance analysis and water supply proposals",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg, cfgPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.wqsuite/config.toml)")
	flags.StringVar(&cfg.Home, "home", cfg.Home, "base directory for reports and logs")
	flags.StringVar(&cfg.OutputDir, "output-dir", "", "directory for generated PDFs (defaults to <home>/reports)")
	flags.StringVar(&cfg.StandardsFile, "standards-file", "", "TOML file overriding the built-in standards")
	flags.BoolVar(&cfg.WatchStandards, "watch-standards", cfg.WatchStandards, "reload the standards file when it changes")
	flags.StringVar(&cfg.LogFile, "log-file", "", "log file for the interactive UI (defaults to <home>/wqsuite.log)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	flags.IntVar(&cfg.ReportKeep, "report-keep", cfg.ReportKeep, "number of PDFs to keep in the output directory (0 keeps all)")
	flags.DurationVar(&cfg.JanitorInterval, "janitor-interval", cfg.JanitorInterval, "how often old PDFs are pruned")
	flags.DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "quiet period before reloading the standards file")

	root.AddCommand(
		newAnalyzeCmd(&cfg),
		newProposeCmd(&cfg),
		newParamsCmd(&cfg),
	)
	return root
}

// loadConfig applies the config file, then WQSUITE_* variables, then
// validates. Flags set on the command line win over both.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	} else if cfgPath != "" {
		return fmt.Errorf("config file %s not found", cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}

func suiteConfig(cfg cliconfig.Config) wqsuite.Config {
	return wqsuite.Config{
		OutputDir:       cfg.OutputDir,
		StandardsFile:   cfg.StandardsFile,
		WatchStandards:  cfg.WatchStandards,
		ReportKeep:      cfg.ReportKeep,
		JanitorInterval: cfg.JanitorInterval,
		DebounceDelay:   cfg.DebounceDelay,
	}
}

// reloadLogger records standards reloads and state changes in the log.
type reloadLogger struct {
	wqsuite.BaseEventHandler
	logger log.Logger
}

func (h reloadLogger) OnStateChange(e wqsuite.StateChangeEvent) {
	h.logger.Debug("suite state changed",
		log.String("from", e.Previous.String()),
		log.String("to", e.Current.String()),
		log.String("reason", e.Reason),
	)
}

func (h reloadLogger) OnStandardsReloaded(e wqsuite.StandardsReloadedEvent) {
	h.logger.Info("standards reloaded", log.Path(e.Path), log.Int("parameters", e.Parameters))
}

// runInteractive starts the suite and the full-screen UI over one session.
// The log goes to a file so it never draws over the UI.
func runInteractive(cfg cliconfig.Config) error {
	logger, closeLog, err := log.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("configuration",
		log.String("output_dir", cfg.OutputDir),
		log.String("standards_file", cfg.StandardsFile),
		log.Bool("watch_standards", cfg.WatchStandards),
		log.Int("report_keep", cfg.ReportKeep),
	)

	suite, err := wqsuite.New(suiteConfig(cfg),
		wqsuite.WithLogger(logger),
		wqsuite.WithEventHandler(reloadLogger{logger: logger}),
	)
	if err != nil {
		return fmt.Errorf("create suite: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := suite.Start(ctx); err != nil {
		return fmt.Errorf("start suite: %w", err)
	}
	defer func() {
		if err := suite.Stop(); err != nil {
			logger.Error("stop suite", log.Err(err))
		}
	}()

	session, err := suite.OpenSession()
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	return tui.Run(ctx, session, logger)
}
