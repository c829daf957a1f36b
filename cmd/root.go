package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tokentools/tokendiff/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = ` _        _                  _ _  __  __
| |_ ___ | | _____ _ __   __| (_)/ _|/ _|
| __/ _ \| |/ / _ \ '_ \ / _' | | |_| |_
| || (_) |   <  __/ | | | (_| | |  _|  _|
 \__\___/|_|\_\___|_| |_|\__,_|_|_| |_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tokendiff",
	Short: "Compare design token sets and score how closely they match.",
	Long: LOGO + `tokendiff compares a project's design tokens (colors, typography, spacing,
border radius) against a reference set, scores each category, and audits the
color palette for WCAG contrast issues, right from your command line.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tokendiff.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")

}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".tokendiff")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.tokendiff.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default values for the matching policy keys
	viper.SetDefault("match.color_delta", 5.0)
	viper.SetDefault("match.numeric_tolerance", 2.0)
	viper.SetDefault("match.color_weight", 0.8)
	viper.SetDefault("match.numeric_weight", 0.7)

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)

}
