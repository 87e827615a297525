package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/payplan-tools/payplan/pkg/server"
	"github.com/payplan-tools/payplan/pkg/services/config"
	"github.com/payplan-tools/payplan/pkg/services/plan"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the PayPlan web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the payplan config file (YAML)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	// Env vars win over the config file.
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	logger.Info().Msgf("starting server on %s", addr)

	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Planner: plan.NewController(),
			Logger:  logger,
		},
	})

	return api.Start()
}
