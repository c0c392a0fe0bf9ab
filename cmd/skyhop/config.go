package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
)

var (
	flagValidate string
	flagResolved bool
	flagFrom     string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate the game configuration",
	Long: `Print the built-in default configuration as YAML, or validate a
custom configuration file.

With --resolved, print the configuration 'skyhop play' would use after
applying the search order (--from, ~/.skyhop/configs, ./configs, defaults).

Examples:
  skyhop config > ~/.skyhop/configs/skyhop.yaml
  skyhop config --resolved
  skyhop config --resolved --from ./my-skyhop.yaml
  skyhop config --validate ./my-skyhop.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Validate the config file at this path")
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
	configCmd.Flags().StringVar(&flagFrom, "from", "", "Custom config path used with --resolved")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagResolved {
		data, err := resolvedYAML(flagFrom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	if flagValidate == "" {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadFile(flagValidate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config %s:\n%v\n", flagValidate, err)
		os.Exit(1)
	}
	fmt.Printf("%s: OK\n", flagValidate)
}

// resolvedYAML loads the configuration through the normal search order
// and encodes it back to YAML.
func resolvedYAML(customPath string) ([]byte, error) {
	cfg, err := config.Load(customPath)
	if err != nil {
		return nil, err
	}
	return config.Marshal(cfg)
}
