package app

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/harmonia-app/harmonia/internal/config"
	"github.com/harmonia-app/harmonia/internal/scenario"
	"github.com/harmonia-app/harmonia/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the assistant over HTTP",
	Long: `Start the HTTP API: health, summary, analyze, and the demo scenario
endpoints. The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  harmonia serve
  harmonia serve --port 3000
  PORT=8090 harmonia serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind address (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	catalog, err := scenario.Load()
	if err != nil {
		return fmt.Errorf("loading scenario catalog: %w", err)
	}

	builder := newBuilder(cfg, true)

	srv := server.New(server.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		Version:        appVersion,
		LLMEnabled:     cfg.LLM.Enabled(),
	}, builder, catalog)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("harmonia %s listening on %s", appVersion, srv.Addr())
	if cfg.LLM.Enabled() {
		fmt.Printf(" (llm: %s)", cfg.LLM.Model)
	}
	fmt.Println()

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return srv.Run(ctx)
	})
	if err := grp.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	fmt.Println("harmonia stopped")
	return nil
}
