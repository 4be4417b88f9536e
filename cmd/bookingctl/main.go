package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rusunawa-id/booking-service/internal/cli/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "bookingctl",
		Short: "Offline tools for rusunawa booking rules",
	}

	rootCmd.AddCommand(
		commands.VerifyCmd(),
		commands.QuoteCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
