// Package main prints bcrypt hashes for use as auth.password_hash.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:           "hash-generator PASSWORD...",
		Short:         "Generate bcrypt hashes for the login credentials",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeHashes(cmd.OutOrStdout(), args, cost)
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost,
		fmt.Sprintf("bcrypt cost (%d-%d)", bcrypt.MinCost, bcrypt.MaxCost))
	return cmd
}

// writeHashes writes one "password: hash" line per password. With a single
// password only the hash is printed so the output can be piped into config.
func writeHashes(w io.Writer, passwords []string, cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}

	for _, password := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if len(passwords) == 1 {
			fmt.Fprintln(w, string(hash))
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", password, hash)
	}
	return nil
}
