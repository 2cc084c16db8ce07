// Package cli implements the weightlog CLI commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rcliao/weightlog/internal/config"
	"github.com/rcliao/weightlog/internal/logging"
	"github.com/rcliao/weightlog/internal/prompt"
	"github.com/rcliao/weightlog/internal/render"
	"github.com/rcliao/weightlog/internal/store"
	"github.com/spf13/cobra"
)

var (
	logFile    string
	configPath string
	formatFlag string
	logLevel   string
	assumeYes  bool
	noColor    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "weightlog",
	Short: "Keeps a log of your body weight",
	Long: "Keeps a log of your body weight in a plain CSV file.\n" +
		"Without flags the latest entries are shown as a table.",
	Args: cobra.NoArgs,
	Run:  runRoot,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logFile, "file", "", "Log file path (default: $WEIGHTLOG_FILE or ~/Documents/lists/weightlog.csv)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $WEIGHTLOG_CONFIG or ~/.config/weightlog/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format for stats and export: text or json")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	RootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to every confirmation")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	RootCmd.Flags().BoolP("add", "a", false, "Add weight to log")
	RootCmd.Flags().BoolP("list", "l", false, "Print all entries")
	RootCmd.Flags().Bool("raw", false, "Print raw log file to stdout")
	RootCmd.Flags().Bool("plain", false, "Print all entries without pretty table formatting")

	RootCmd.MarkFlagsMutuallyExclusive("add", "list")
	RootCmd.MarkFlagsMutuallyExclusive("raw", "list")
	RootCmd.MarkFlagsMutuallyExclusive("raw", "plain")
	RootCmd.MarkFlagsMutuallyExclusive("plain", "list")
}

// loadConfig resolves settings: flags over environment over file over defaults.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	config.FromEnv(&cfg)
	if logFile != "" {
		cfg.LogPath = logFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
}

func newPrompter(cmd *cobra.Command) *prompt.Prompter {
	return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), assumeYes)
}

func openLog(cfg config.Config, logger *slog.Logger, c store.Confirmer) (*store.Log, error) {
	opts := []store.Option{
		store.WithLogger(logger),
		store.WithHeight(cfg.HeightCm),
	}
	if c != nil {
		opts = append(opts, store.WithConfirmer(c))
	}
	return store.Open(cfg.LogPath, opts...)
}

func useColor(cfg config.Config, w io.Writer) bool {
	if noColor {
		return false
	}
	if cfg.Color != nil {
		return *cfg.Color
	}
	return render.ColorEnabled(w)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
