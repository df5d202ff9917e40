package main

import (
	"fmt"

	"github.com/aretw0/awsh/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a configuration file",
	Long: `Parses the configuration and builds its namespace, reporting invalid entries,
names that collide with built-in commands, and unknown handlers. Empty
categories and shadowed entries are printed as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if len(args) > 0 {
			path = args[0]
		}

		summary, err := cli.Validate(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Printf("Namespace is valid: %s\n", summary)
		for _, w := range summary.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
