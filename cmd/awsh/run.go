package main

import (
	"github.com/aretw0/awsh/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive console",
	Long: `Starts an interactive session at the root of the namespace.
Ctrl-C cancels the current line; Ctrl-D exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		noIdentity, _ := cmd.Flags().GetBool("no-identity")
		plain, _ := cmd.Flags().GetBool("plain")
		confirm, _ := cmd.Flags().GetBool("confirm")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
		history, _ := cmd.Flags().GetString("history")

		return cli.Execute(cli.RunOptions{
			ConfigPath:  configPath,
			Debug:       debug,
			NoIdentity:  noIdentity,
			Plain:       plain,
			Confirm:     confirm,
			MetricsAddr: metricsAddr,
			HistoryFile: history,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, cmd := range []*cobra.Command{runCmd, rootCmd} {
		flags := cmd.Flags()
		flags.Bool("debug", false, "Log debug records to stderr")
		flags.Bool("no-identity", false, "Skip the caller identity check at startup")
		flags.Bool("plain", false, "Plain line input and uncolored output, even on a terminal")
		flags.Bool("confirm", false, "Ask before running each action")
		flags.String("metrics-addr", "", "Serve /metrics, /healthz and /tree on this address (e.g. :2112)")
		flags.String("history", "", "History file (overrides history_file in the config)")
	}

	// bare `awsh` starts the console
	rootCmd.RunE = runCmd.RunE
}
