package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/adaptutor/internal/config"
	"github.com/abhisek/adaptutor/internal/store"
)

var (
	logger   = zap.NewNop()
	logLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg      = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "adaptutor",
	Short: "Adaptive tutoring engine",
	Long: "adaptutor estimates a learner's cognitive load and learning style from the " +
		"conversation and composes a personalized tutoring instruction for each turn.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logLevel.SetLevel(zap.DebugLevel)
		}
		l, err := newLogger()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		logger = l

		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path, ".env")
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides config and ADAPTUTOR_DB)")
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to YAML configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds a production zap logger writing to stderr at logLevel.
func newLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = logLevel
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = logLevel.Level() > zap.DebugLevel
	return zc.Build()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured db path, then ADAPTUTOR_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the database resolved by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("opened database", zap.String("path", dbPath))
	return s, nil
}
