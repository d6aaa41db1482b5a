package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/izouxv/goSeedSplit/field"
)

// millerRabinRounds makes a false positive vanishingly unlikely; there are
// only five numbers to check, so the extra rounds cost nothing.
const millerRabinRounds = 64

var verifyPrimesCmd = &cobra.Command{
	Use:   "verify-primes",
	Short: "Check the field moduli against their bit widths",
	Long: `Check, offline, that every modulus in the prime table is prime and is
the largest prime below its power of two. The table is hard-coded and
never computed at runtime; this command exists so the values can be
re-verified independently.`,
	RunE: runVerifyPrimes,
}

func init() {
	rootCmd.AddCommand(verifyPrimesCmd)
}

func runVerifyPrimes(cmd *cobra.Command, args []string) error {
	one := big.NewInt(1)
	for _, strength := range field.Strengths {
		p, err := field.Prime(strength)
		if err != nil {
			return err
		}
		if !p.ProbablyPrime(millerRabinRounds) {
			return fmt.Errorf("table entry for %d bits (%s) is not prime", strength, field.PrimeString(strength))
		}

		// Nothing between the table entry and 2^strength may be prime.
		limit := new(big.Int).Lsh(one, uint(strength))
		for c := new(big.Int).Add(p, one); c.Cmp(limit) < 0; c.Add(c, one) {
			if c.ProbablyPrime(millerRabinRounds) {
				return fmt.Errorf("%s is prime and above the table entry for %d bits", c, strength)
			}
		}

		cmd.Printf("Biggest prime under %d bits is verified (%s)\n", strength, field.PrimeString(strength))
	}
	return nil
}
