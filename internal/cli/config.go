package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roboco-io/docxseq/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage docxseq configuration.

Config file location: ~/.docxseq/config.yaml (override with --config)

Subcommands:
  show    show the current configuration
  init    create a default config file
  set     change a config value
  path    print the config file path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Long: `Show the configuration in effect.

Defaults are shown when no config file exists. Environment variables
listed below override the file.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Create a default config file.

Fails if the file already exists; use --force to overwrite it.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a config value",
	Long: `Change a config value.

Supported keys:
  log.level   zerolog level (trace, debug, info, warn, error, disabled)
  log.format  log output format (console, json)

Examples:
  docxseq config set log.level debug
  docxseq config set log.format json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := config.Resolve(rootConfigPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.ConfigPath())
		return nil
	},
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loader, err := config.Resolve(rootConfigPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config loader: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if loader.Exists() {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", loader.ConfigPath())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file: (defaults)\n\n")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	fmt.Fprintln(cmd.OutOrStdout(), "Environment:")
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	envVars := []struct {
		key   string
		desc  string
		value string
	}{
		{config.EnvLogLevel, "log level", os.Getenv(config.EnvLogLevel)},
		{config.EnvLogFormat, "log format", os.Getenv(config.EnvLogFormat)},
		{config.EnvVerbose, "debug logging", os.Getenv(config.EnvVerbose)},
	}

	for _, ev := range envVars {
		status := "(unset)"
		if ev.value != "" {
			status = ev.value
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", ev.key, ev.desc, status)
	}
	return w.Flush()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader, err := config.Resolve(rootConfigPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config loader: %w", err)
	}

	if configForce {
		err = loader.Save(config.DefaultConfig())
	} else {
		err = loader.Init()
	}
	if err != nil {
		if loader.Exists() && !configForce {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", loader.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	loader, err := config.Resolve(rootConfigPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config loader: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config updated: %s = %s\n", key, value)
	return nil
}
