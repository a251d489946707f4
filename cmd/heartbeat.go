package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// heartbeatCmd represents the heartbeat command
var heartbeatCmd = &cobra.Command{
	Use:   "heartbeat",
	Short: "Check that the DataCite API is up",
	Args:  cobra.NoArgs,
	RunE:  runHeartbeat,
}

func init() {
	rootCmd.AddCommand(heartbeatCmd)
}

func runHeartbeat(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checking DataCite API at %s...\n", client.BaseURL())

	up, err := client.Heartbeat(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to reach DataCite: %w", err)
	}
	if !up {
		return fmt.Errorf("DataCite API is down")
	}

	fmt.Fprintln(out, "✓ DataCite API is up")
	fmt.Fprintf(out, "- Mode: %s\n", client.Mode())
	fmt.Fprintf(out, "- User agent: %s\n", client.UserAgent())
	return nil
}
