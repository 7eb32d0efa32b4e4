package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/poofware/pm-dashboard/internal/controllers"
	"github.com/poofware/pm-dashboard/internal/utils"
)

const shutdownGrace = 5 * time.Second

func addServe(topLevel *cobra.Command, factory AppFactory) {
	var port string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the dashboard as JSON over HTTP.",
		Example: "PMD_API_BASE_URL=http://localhost:8000/api pmdash serve --port 8085",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, factory)
			if err != nil {
				return err
			}
			defer a.Close()

			if port == "" {
				port = a.Config.AppPort
			}
			srv := &http.Server{
				Addr:              ":" + port,
				Handler:           controllers.NewRouter(a),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				utils.Logger.Infof("Starting %s on port: %s", a.Config.AppName, port)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				utils.Logger.Info("Shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Port to listen on. Defaults to PMD_APP_PORT.")

	topLevel.AddCommand(cmd)
}
