package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"maraos/internal/console"
	"maraos/internal/store"
)

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionResetCmd)
	sessionResetCmd.Flags().Bool("keep-history", false, "only drop the saved snapshot")
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the saved console snapshot and command history",
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved slots",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Default()
		if err != nil {
			return err
		}
		keys, err := s.Keys()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(keys) == 0 {
			fmt.Fprintln(out, "no saved slots")
			return nil
		}
		for _, k := range keys {
			b, err := s.Get(k)
			if err != nil {
				fmt.Fprintf(out, "%s\t(unreadable: %v)\n", k, err)
				continue
			}
			fmt.Fprintf(out, "%s\t%d bytes\n", k, len(b))
		}
		return nil
	},
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved snapshot (and history unless --keep-history)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Default()
		if err != nil {
			return err
		}
		keys := []string{console.SnapshotKey}
		if keep, _ := cmd.Flags().GetBool("keep-history"); !keep {
			keys = append(keys, console.HistoryKey)
		}
		for _, k := range keys {
			if err := s.Delete(k); err != nil {
				return fmt.Errorf("delete %s: %w", k, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ cleared %s\n", k)
		}
		return nil
	},
}
