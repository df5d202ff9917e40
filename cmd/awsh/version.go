package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/awsh"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of awsh",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("awsh version %s\n", strings.TrimSpace(awsh.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
