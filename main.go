package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xavier-romero/agglayer-dashboard/pkg/agglayer"
	"github.com/xavier-romero/agglayer-dashboard/pkg/api"
	"github.com/xavier-romero/agglayer-dashboard/pkg/core"
	"github.com/xavier-romero/agglayer-dashboard/pkg/dashboard"
	"github.com/xavier-romero/agglayer-dashboard/pkg/l1"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var port int

	root := &cobra.Command{
		Use:           "agglayer-dashboard",
		Short:         "Web dashboard for rollup and AggLayer certificate status",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", envOr("DASHBOARD_CONFIG", "config.json"), "path to config.json")
	root.PersistentFlags().IntVarP(&port, "port", "p", envOrInt("DASHBOARD_PORT", 0), "listen port (overrides the default 8000)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, port)
		},
	}
	check := &cobra.Command{
		Use:   "check",
		Short: "Run the preflight checks and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(configPath)
		},
	}

	root.AddCommand(serve, check)
	root.RunE = serve.RunE
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("var", key).Str("value", v).Msg("Ignoring non-numeric environment override")
		return fallback
	}
	return n
}

func runServe(configPath string, port int) error {
	config, err := core.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		config.Port = port
	}

	l1Client, err := l1.NewClient(config)
	if err != nil {
		return err
	}
	defer l1Client.Close()

	// An unreachable RPC only warns here; the server still starts so the
	// error pages can report the outage.
	probeCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if !l1Client.Connected(probeCtx) {
		log.Warn().Str("rpc", config.RPCURL).Msg("RPC connection test failed, starting anyway")
	}
	cancel()

	var certs dashboard.CertificateReader
	if config.AggLayerURL != "" {
		certs = agglayer.NewClient(config.AggLayerURL)
	}

	cache, err := dashboard.NewCache(config.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to create cache: %v", err)
	}
	defer cache.Close()

	service := dashboard.NewService(l1Client, certs, config, cache)
	server := api.NewServer(service, l1Client.Connected, config.Port)
	server.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func runCheck(configPath string) error {
	config, err := core.LoadConfig(configPath)
	if err != nil {
		return err
	}
	log.Info().Str("config", configPath).Msg("Config OK")

	l1Client, err := l1.NewClient(config)
	if err != nil {
		return err
	}
	defer l1Client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if !l1Client.Connected(ctx) {
		return fmt.Errorf("L1 RPC unreachable: %s", config.RPCURL)
	}
	log.Info().Str("rpc", config.RPCURL).Msg("L1 RPC OK")

	if config.AggLayerURL != "" {
		if err := agglayer.NewClient(config.AggLayerURL).Reachable(ctx); err != nil {
			return fmt.Errorf("AggLayer unreachable: %v", err)
		}
		log.Info().Str("agglayer", config.AggLayerURL).Msg("AggLayer OK")
	}

	return nil
}
