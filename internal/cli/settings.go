package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"maraos/internal/profile"
	"maraos/internal/settings"
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Edit the agent profile (id and clearance level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run()
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current agent profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !p.Authenticated() {
			fmt.Fprintln(out, "anonymous (clearance 0)")
			return nil
		}
		level := "none"
		if n, ok := p.Level(); ok {
			level = fmt.Sprint(n)
		}
		fmt.Fprintf(out, "id: %s\nusername: %s\nclearance: %s\n", p.ID, p.Username, level)
		return nil
	},
}
