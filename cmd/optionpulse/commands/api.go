package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nravi/optionpulse/internal/api"
	"github.com/nravi/optionpulse/internal/api/handlers"
	"github.com/nravi/optionpulse/internal/scheduler"
	"github.com/nravi/optionpulse/internal/scheduler/jobs"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server with the live dashboard feed.

Endpoints:
  GET    /health        - Health check
  GET    /ws            - WebSocket feed of scoring outcomes
  POST   /api/score     - Run one scoring pass (optional manual overrides)
  GET    /api/history   - Session history of scoring runs
  DELETE /api/history   - Clear session history
  GET    /api/market    - Live indicator values and market phase

Example:
  go run ./cmd/optionpulse api
  go run ./cmd/optionpulse api --port 8086 --no-refresh`,
	RunE: runAPIServer,
}

var (
	apiPort    string
	apiRefresh bool
)

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
	apiCmd.Flags().BoolVar(&apiRefresh, "refresh", true, "run the periodic market data refresh job")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== OptionPulse API Server ===")

	// 1. Wire the scoring pipeline
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	if apiPort != "" {
		rt.cfg.Port = apiPort
	}

	rt.log.WithFields(map[string]interface{}{
		"port": rt.cfg.Port,
		"env":  rt.cfg.Env,
	}).Info("Initializing API server")

	// 2. Create hub and handlers
	hub := api.NewHub(rt.log)
	scoreHandler := handlers.NewScoreHandler(rt.runner, rt.session, hub, rt.log)
	marketHandler := handlers.NewMarketHandler(rt.service, rt.clock, rt.log)

	// 3. Create router and server
	router := api.NewRouter(scoreHandler, marketHandler, hub, rt.log)
	server := api.New(rt.cfg, rt.log, router)

	// 4. Start the refresh scheduler
	var sched *scheduler.Scheduler
	if apiRefresh {
		sched = scheduler.New(rt.log)
		if err := sched.AddJob(jobs.NewRefreshJob(rt.service, rt.clock, rt.log)); err != nil {
			return fmt.Errorf("add refresh job: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// 5. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			rt.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	rt.log.Info("API server started successfully")
	fmt.Printf("\nServer running on http://localhost:%s\n", rt.cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET    /health")
	fmt.Println("  GET    /ws")
	fmt.Println("  POST   /api/score")
	fmt.Println("  GET    /api/history")
	fmt.Println("  DELETE /api/history")
	fmt.Println("  GET    /api/market")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	rt.log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	rt.log.Info("Server stopped")
	return nil
}
