// Package cli provides the Cobra-based CLI for the simplecrud service.
package cli

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/simplecrud/internal/api"
	"github.com/example/simplecrud/internal/config"
	"github.com/example/simplecrud/internal/repository"
	"github.com/example/simplecrud/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "simplecrud",
	Short: "A minimal product CRUD web service",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl := slog.LevelInfo
		switch strings.ToLower(viper.GetString("log-level")) {
		case "debug":
			lvl = slog.LevelDebug
		case "warn", "warning":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		}
		slog.SetDefault(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
		))
	},
}

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper(viper.GetViper())
			router := NewRouter()

			slog.Info("starting simplecrud web service", "addr", cfg.Addr())
			return http.ListenAndServe(cfg.Addr(), router)
		},
	}
	serveCmd.Flags().String("host", "", "listen host")
	serveCmd.Flags().String("port", "8080", "listen port")
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("host", serveCmd.Flags().Lookup("host"))
	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	viper.SetEnvPrefix("SIMPLECRUD")
	viper.AutomaticEnv()
}

// NewRouter wires the application together: one repository instance owned by
// one service, mounted on a chi router with logging and panic recovery. No
// DI container; ownership is passed explicitly.
func NewRouter() chi.Router {
	repo := repository.NewMemoryRepository()
	svc := service.NewProductService(repo)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	api.NewAPI(svc).RegisterRoutes(r)
	return r
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
