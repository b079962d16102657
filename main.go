package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sanjivni/hospital-backend/config"
	admissionServices "github.com/sanjivni/hospital-backend/internal/admission/services"
	"github.com/sanjivni/hospital-backend/internal/cli"
	"github.com/sanjivni/hospital-backend/internal/routes"
	"github.com/sanjivni/hospital-backend/pkg/storage/jsonstore"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-backend",
		Short: "Patient admission & billing tracker",
		// Tanpa subcommand, jalankan menu terminal seperti CLI lama.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(menuCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.AppEnv == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive terminal menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu()
		},
	}
}

func runMenu() error {
	cfg := config.LoadConfig()
	// Menu menulis langsung ke stdout; log cukup untuk error saja.
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	store := jsonstore.New(cfg.DataFile)
	svc := admissionServices.NewPatientService(store)
	return cli.NewMenu(svc, os.Stdin, os.Stdout).Run()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "HTTP API untuk form web",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			setupLogging(cfg)

			store := jsonstore.New(cfg.DataFile)
			svc := admissionServices.NewPatientService(store)

			e := echo.New()
			e.HideBanner = true
			routes.Init(e, svc)

			go func() {
				log.Info().Str("port", cfg.Port).Str("data_file", cfg.DataFile).Msg("Server berjalan")
				if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Gagal menjalankan server")
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			<-sigChan

			log.Info().Msg("Mematikan server...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := e.Shutdown(ctx); err != nil {
				return err
			}
			log.Info().Msg("Server berhenti")
			return nil
		},
	}
}
