package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	cfg "maraos/internal/config"
	"maraos/internal/profile"
	"maraos/internal/system"
	"maraos/internal/webui/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "address to bind (host:port); defaults to config server.addr")
	serveCmd.Flags().String("source", "", "catalog source (defaults to config catalog.source)")
	serveCmd.Flags().Bool("open", false, "open the catalog endpoint in the system browser")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog API, websocket consoles and metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := cfg.Load()
		if err != nil {
			system.Logger.Warn("config unreadable, using defaults", "err", err)
		}
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			conf.Server.Addr = a
		}
		if s, _ := cmd.Flags().GetString("source"); s != "" {
			conf.Catalog.Source = s
		}
		caller, err := profile.Load()
		if err != nil {
			system.Logger.Warn("profile unreadable, sessions are anonymous", "err", err)
		}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		srv := server.New(conf, caller)
		url := "http://" + conf.Server.Addr + "/api/console/files"
		system.Logger.Info("starting server", "url", url)
		if open, _ := cmd.Flags().GetBool("open"); open {
			go func() {
				if err := server.OpenBrowser(url); err != nil {
					system.Logger.Warn("open browser failed", "err", err)
				}
			}()
		}
		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		return nil
	},
}
