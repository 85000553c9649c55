package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/moora/internal/outwriter"
	"github.com/katalvlaran/moora/matrix"
	"github.com/katalvlaran/moora/moora"
)

// All linker flags will be set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
var input = &rawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "moora",
	Short: "Rank alternatives with the MOORA family of decision methods.",
	Long: `moora ranks the alternatives of a decision problem (YAML or CSV) with
Ratio, RefPoint, FMF or MultiMOORA.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringP("method", "m", moora.MethodMultiMOORA.String(), "Method: ratio or refpoint or fmf or multimoora")
	rootCmd.PersistentFlags().StringP("output", "o", outwriter.TextOut, "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", defaultPrecision, "Decimal precision for scores")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("mnorm", matrix.StrategyVector, "Matrix normalization: vector or sum")
	rootCmd.PersistentFlags().String("wnorm", matrix.StrategySum, "Weight normalization: sum or vector")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		outwriter.FatalError("Error binding root flags", err)
	}

	rankCmd.Flags().String("format", "", "Input format when reading stdin: yaml or csv")
	if err := viper.BindPFlags(rankCmd.Flags()); err != nil {
		outwriter.FatalError("Error binding rank flags", err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".moora")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("MOORA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("method", moora.MethodMultiMOORA.String())
	viper.SetDefault("output", outwriter.TextOut)
	viper.SetDefault("precision", defaultPrecision)
	viper.SetDefault("color", "yes")
	viper.SetDefault("mnorm", matrix.StrategyVector)
	viper.SetDefault("wnorm", matrix.StrategySum)
}

// sharedSetup merges config file, env and flags, then validates them into cfg.
func sharedSetup(_ *cobra.Command, _ []string) error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return processAndValidate(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
