package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cfg "maraos/internal/config"
	"maraos/internal/vfs"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().Bool("force", false, "overwrite existing files")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the config directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cfg.Dir()
		if err != nil {
			return err
		}
		c, err := cfg.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config dir: %s\n", dir)
		src := c.Catalog.Source
		if src == "" {
			src = "(bundled)"
		}
		fmt.Fprintf(out, "catalog:    %s\n", src)
		fmt.Fprintf(out, "server:     %s\n", c.Server.Addr)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write config.yaml and an editable copy of the bundled catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		dir, err := cfg.Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		filesPath := filepath.Join(dir, "files.yaml")
		if force || !fileExists(filesPath) {
			if err := os.WriteFile(filesPath, vfs.DefaultManifest(), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ wrote %s\n", filesPath)
		} else {
			fmt.Fprintf(out, "• kept %s\n", filesPath)
		}

		confPath, err := cfg.Path()
		if err != nil {
			return err
		}
		if force || !fileExists(confPath) {
			c := cfg.Default()
			c.Catalog.Source = filesPath
			if err := cfg.Save(c); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ wrote %s\n", confPath)
		} else {
			fmt.Fprintf(out, "• kept %s\n", confPath)
		}
		return nil
	},
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
