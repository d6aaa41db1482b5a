package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/izouxv/goSeedSplit/field"
	"github.com/izouxv/goSeedSplit/mnemonic"
	"github.com/izouxv/goSeedSplit/seedshare"
)

var (
	splitSeedPhrase    string
	splitGenerate      int
	splitMinimum       int
	splitShares        int
	splitShareStrength int
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a seed phrase into mnemonic shares",
	Long: `Split a BIP39 seed phrase into N mnemonic shares with a recovery
threshold of M. Provide your own phrase with --seed-phrase or generate a
fresh one with --generate-seed.

Seed strength in bits:
  128 bits -> 12 words
  160 bits -> 15 words
  192 bits -> 18 words
  224 bits -> 21 words
  256 bits -> 24 words

Examples:
  # split an existing 12-word phrase, 2-of-3
  goseedsplit split -s "legal winner thank year wave sausage worth useful legal winner thank yellow"

  # generate a 24-word seed and split it 3-of-5
  goseedsplit split -g 256 -M 3 -N 5`,
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVarP(&splitSeedPhrase, "seed-phrase", "s", "", "seed phrase to split; 12, 15, 18, 21 or 24 words")
	splitCmd.Flags().IntVarP(&splitGenerate, "generate-seed", "g", 0, "generate a seed at this strength in bits instead of supplying one")
	splitCmd.Flags().IntVarP(&splitMinimum, "minimum", "M", 2, "number of shares needed to recover the seed phrase")
	splitCmd.Flags().IntVarP(&splitShares, "shares", "N", 3, "number of shares created")
	splitCmd.Flags().IntVar(&splitShareStrength, "share-strength", 0, "strength of the shares in bits, must be >= the seed strength (default: same as the seed)")

	viper.BindPFlag("minimum", splitCmd.Flags().Lookup("minimum"))
	viper.BindPFlag("shares", splitCmd.Flags().Lookup("shares"))
	viper.BindPFlag("share-strength", splitCmd.Flags().Lookup("share-strength"))
}

func runSplit(cmd *cobra.Command, args []string) error {
	seed := splitSeedPhrase
	if splitGenerate != 0 {
		var err error
		seed, err = mnemonic.Generate(splitGenerate)
		if err != nil {
			return err
		}
	}
	if seed == "" {
		return fmt.Errorf("provide a seed phrase with --seed-phrase or generate one with --generate-seed")
	}

	minimum := viper.GetInt("minimum")
	nShares := viper.GetInt("shares")
	shareStrength := viper.GetInt("share-strength")

	set, err := seedshare.NewShareSet(seed, minimum, nShares, shareStrength)
	if err != nil {
		return err
	}

	printWrapped(cmd, "MAIN SEED: "+seed)
	for _, share := range set.Shares {
		printWrapped(cmd, fmt.Sprintf("SHARE #%d: %s", share.Index, share.Phrase))
	}

	printWrapped(cmd, "")
	printWrapped(cmd, fmt.Sprintf("%d SHARES CREATED (you need at least %d of them to recover the original seed phrase)",
		len(set.Shares), set.Minimum))
	printWrapped(cmd, fmt.Sprintf("PRIME NUMBER USED: %s", field.PrimeString(set.ShareStrength)))
	printWrapped(cmd, fmt.Sprintf("SHARE SET: %s (fingerprint %s)", set.ID, set.Fingerprint))
	printWrapped(cmd, "")
	printWrapped(cmd, "<!> WRITE DOWN THE PRIME NUMBER USED AND SHARES GENERATED (SHARE NUMBER + LIST OF WORDS) <!>")

	return nil
}
