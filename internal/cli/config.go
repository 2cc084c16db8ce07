package cli

import (
	"fmt"

	"github.com/rcliao/weightlog/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		Run:   runConfig,
	}

	RootCmd.AddCommand(cmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}

	b, err := cfg.Marshal()
	if err != nil {
		exitErr("config", err)
	}

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# config file: %s\n%s", path, b)
}
