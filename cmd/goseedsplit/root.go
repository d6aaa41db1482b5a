package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/izouxv/goSeedSplit/utils"
)

// Version is set via ldflags at build time.
var Version = "dev"

var cfgFile string

// terminalWidth keeps printed seed phrases from splitting words across
// lines, so they can be copied back verbatim.
const terminalWidth = 79

var rootCmd = &cobra.Command{
	Use:     "goseedsplit",
	Short:   "Split a BIP39 seed phrase into Shamir shares and recover it",
	Version: Version,
	Long: `goseedsplit splits a BIP39 seed phrase into N mnemonic-encoded shares
using Shamir's secret sharing over a prime field. Any M of the shares
recover the original phrase exactly; fewer than M reveal nothing about it.

Flag defaults can come from a config file or from environment variables
with the SEEDSPLIT_ prefix (for example SEEDSPLIT_MINIMUM=3).`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.goseedsplit.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".goseedsplit")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SEEDSPLIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine, flags and env cover everything.
	_ = viper.ReadInConfig()
}

func printWrapped(cmd *cobra.Command, text string) {
	if text == "" {
		cmd.Println()
		return
	}
	for _, line := range utils.WrapWords(text, terminalWidth) {
		cmd.Println(line)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
