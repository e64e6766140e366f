package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"maraos/internal/app"
	"maraos/internal/system"
)

var rootCmd = &cobra.Command{
	Use:   "maraos",
	Short: "maraos – the M.A.R.A. OS console",
	Long:  "maraos opens the M.A.R.A. console in the terminal and offers subcommands to inspect its file catalog and serve it over HTTP.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		system.SetDebug(debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the console
		opts := app.Options{}
		opts.CatalogSource, _ = cmd.Flags().GetString("catalog")
		if cmd.Flags().Changed("boot") {
			boot, _ := cmd.Flags().GetBool("boot")
			opts.Boot = &boot
		}
		return app.Start(cmd.Context(), opts)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.Flags().String("catalog", "", "catalog source: manifest file or http(s) URL (overrides config)")
	rootCmd.Flags().Bool("boot", false, "play the startup animation")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
