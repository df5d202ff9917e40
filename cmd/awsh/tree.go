package main

import (
	"os"

	"github.com/aretw0/awsh/internal/cli"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the namespace",
	Long:  `Loads the configuration and prints the namespace as an indented tree or a Mermaid diagram (graph TD).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		format, _ := cmd.Flags().GetString("format")
		return cli.PrintTree(os.Stdout, cli.TreeOptions{ConfigPath: configPath, Format: format})
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().String("format", cli.FormatText, "Output format: text or mermaid")
}
