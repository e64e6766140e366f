package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	cfg "maraos/internal/config"
	"maraos/internal/vfs"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogLsCmd)
	catalogCmd.AddCommand(catalogSchemaCmd)
	catalogCmd.PersistentFlags().String("source", "", "catalog source (defaults to config catalog.source)")
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the console file catalog",
}

var catalogLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every catalog entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderCatalogTable(c))
		return nil
	},
}

var catalogSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of a catalog manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := vfs.MarshalSchema(vfs.ManifestSchema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func loadCatalog(cmd *cobra.Command) (*vfs.Catalog, error) {
	conf, err := cfg.Load()
	if err != nil {
		return nil, err
	}
	source := conf.Catalog.Source
	if s, _ := cmd.Flags().GetString("source"); s != "" {
		source = s
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return vfs.Load(ctx, source, conf.Catalog.Timeout)
}

func renderCatalogTable(c *vfs.Catalog) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff00"))
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#0b5d1e"))).
		Headers("PATH", "TYPE", "SIZE", "LOCK").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, f := range c.List() {
		size := "-"
		if !f.IsFolder() {
			size = vfs.HumanSize(len(f.Content))
		}
		lock := ""
		if n, ok := f.Lock(); ok {
			lock = strconv.Itoa(n)
		}
		t.Row(f.FullPath, string(f.Type), size, lock)
	}
	return t.Render()
}
