package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the court configuration",
	Long: `Print the court configuration as YAML.

Without flags the effective configuration is printed, after the search
order --config, ~/.pong/configs/pong.yaml, ./configs/pong.yaml, built-in.
With --defaults the built-in file is printed verbatim, ready to be copied
and edited.

Examples:
  pong config
  pong config --defaults > ~/.pong/configs/pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.LoadPong(viper.GetString("config"))
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return err
	}
	fmt.Printf("# paddle travel bound: %v\n", cfg.Bound())
	return nil
}
