package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/crumbline/internal/config"
	"github.com/oakwood-commons/crumbline/internal/formatter"
	"github.com/oakwood-commons/crumbline/pkg/settings"
)

var (
	configOutput  string
	configDefault bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the merged configuration",
	Long: `Print the embedded defaults merged with the user config file
($XDG_CONFIG_HOME/crumbline/config.yaml or --config-file). With --default the
embedded file is printed verbatim, comments included, as a starting point.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if configDefault {
			_, err := out.Write(config.DefaultConfigYAML())
			return err
		}

		run := settings.FromContextOrDefault(rootCtx)
		cfg, err := config.Load(run.ConfigPath)
		if err != nil {
			return usageError(err)
		}
		switch configOutput {
		case "yaml":
			s, err := formatter.FormatYAML(cfg, formatter.YAMLFormatOptions{})
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = fmt.Fprint(out, s)
			return err
		case "json":
			b, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = fmt.Fprintln(out, string(b))
			return err
		default:
			return usageError(fmt.Errorf("invalid output for config: %s (use yaml|json)", configOutput))
		}
	},
}

func init() { //nolint:gochecknoinits
	configCmd.Flags().StringVarP(&configOutput, "output", "o", "yaml", "output format: yaml|json")
	configCmd.Flags().BoolVar(&configDefault, "default", false, "print the embedded default config verbatim")
}
