package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/izouxv/goSeedSplit/field"
	"github.com/izouxv/goSeedSplit/mnemonic"
	"github.com/izouxv/goSeedSplit/seedshare"
)

var (
	recoverShareArgs    []string
	recoverSeedStrength int
	recoverPrimeExpr    string
)

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Recover a seed phrase from shares",
	Long: `Recover the original seed phrase from at least the minimum number of
shares. Each share is passed as "index:phrase".

When the seed was weaker than the shares (see split --share-strength),
pass the seed strength explicitly with --seed-strength. A non-default
prime can be given with --prime, either as a decimal number or as an
expression like "2^256 - 189".

Example:
  goseedsplit recover \
    --share "1:vault oven tail ..." \
    --share "3:noble anchor drift ..."`,
	RunE: runRecover,
}

func init() {
	rootCmd.AddCommand(recoverCmd)

	recoverCmd.Flags().StringArrayVar(&recoverShareArgs, "share", nil, `share as "index:phrase"; repeat for each share`)
	recoverCmd.Flags().IntVar(&recoverSeedStrength, "seed-strength", 0, "strength of the original seed in bits (default: same as the shares)")
	recoverCmd.Flags().StringVar(&recoverPrimeExpr, "prime", "", `prime modulus used during splitting, decimal or "2^N - K" (default: table prime for the share strength)`)
}

func runRecover(cmd *cobra.Command, args []string) error {
	if len(recoverShareArgs) == 0 {
		return fmt.Errorf("no shares given, pass each one with --share \"index:phrase\"")
	}

	shares := make([]seedshare.Share, len(recoverShareArgs))
	for i, arg := range recoverShareArgs {
		share, err := parseShareArg(arg)
		if err != nil {
			return err
		}
		shares[i] = share
	}

	var prime *big.Int
	if recoverPrimeExpr != "" {
		var err error
		prime, err = parsePrimeExpr(recoverPrimeExpr)
		if err != nil {
			return err
		}
	}

	seed, err := seedshare.RecoverSeed(shares, recoverSeedStrength, prime)
	if err != nil {
		return err
	}

	if prime == nil {
		if strength, err := mnemonic.PhraseStrength(shares[0].Phrase); err == nil {
			p, _ := field.Prime(strength)
			prime = p
		}
	}
	if prime != nil {
		printWrapped(cmd, fmt.Sprintf("Prime used: %s", field.PrimeDisplay(prime)))
	}
	printWrapped(cmd, "Shares used:")
	for _, s := range shares {
		printWrapped(cmd, fmt.Sprintf("%d: %s", s.Index, s.Phrase))
	}
	printWrapped(cmd, "")
	printWrapped(cmd, "Seed phrase recovered: "+seed)

	return nil
}

// parseShareArg splits an "index:phrase" argument into a share.
func parseShareArg(arg string) (seedshare.Share, error) {
	idx, phrase, ok := strings.Cut(arg, ":")
	if !ok {
		return seedshare.Share{}, fmt.Errorf("share %q is not of the form \"index:phrase\"", arg)
	}
	index, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil || index < 1 {
		return seedshare.Share{}, fmt.Errorf("share index %q must be a positive number", idx)
	}
	return seedshare.Share{Index: index, Phrase: strings.TrimSpace(phrase)}, nil
}
