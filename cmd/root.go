package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/showrank/internal/config"
	"github.com/abhisek/showrank/internal/logging"
	"github.com/abhisek/showrank/internal/quiz"
)

// runtime is what PersistentPreRunE builds for the subcommands.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	quiz   *quiz.Quiz
}

var rt runtime

var rootCmd = &cobra.Command{
	Use:   "showrank",
	Short: "Rank TV shows and see how close you got",
	Long: `showrank is a terminal ranking quiz.

Drag the shuffled shows into the order you think is right (or grab them with
the keyboard), submit, and every show earns points for where you put it.
Run without arguments to start playing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rt.logger != nil {
			_ = rt.logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (overrides SHOWRANK_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-file", "", `Log file path, "-" disables logging (overrides SHOWRANK_LOG_FILE)`)
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides SHOWRANK_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads config with flags layered on top, then builds the logger and
// the quiz.
func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	q, err := cfg.BuildQuiz()
	if err != nil {
		return err
	}

	rt = runtime{cfg: cfg, logger: logger, quiz: q}
	logger.Debug("config loaded",
		zap.String("config", path),
		zap.String("quiz", q.Title()),
		zap.Int("items", q.Len()),
		zap.Duration("notice_delay", cfg.NoticeDelay))
	return nil
}
