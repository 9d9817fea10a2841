package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FreePeak/cortex/pkg/server"

	"github.com/eddyv73/github-mcp/internal/config"
	"github.com/eddyv73/github-mcp/internal/delivery/mcp"
	"github.com/eddyv73/github-mcp/internal/logger"
	"github.com/eddyv73/github-mcp/internal/repository"
	"github.com/eddyv73/github-mcp/internal/usecase"
	"github.com/eddyv73/github-mcp/pkg/core"
)

func main() {
	// Parse command line flags
	transportMode := flag.String("t", "", "Transport mode (sse or stdio)")
	port := flag.Int("port", 0, "Server port for sse transport")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags if provided
	if *transportMode != "" {
		cfg.TransportMode = *transportMode
	}
	if *port != 0 {
		cfg.ServerPort = *port
	}

	// Initialize logger
	logger.Initialize(cfg.LogLevel)
	logger.Info("Starting %s v%s with %s transport", core.Name(), core.Version(), cfg.TransportMode)

	ctx := context.Background()

	// Wire the GitHub gateway and the use case on top of it
	gateway, err := repository.NewGitHubGateway(ctx, cfg.GitHub)
	if err != nil {
		logger.Error("Failed to create GitHub client: %v", err)
		os.Exit(1)
	}
	githubUseCase := usecase.NewGitHubUseCase(gateway)

	// Create the MCP server. Its own log output goes to stderr so that the
	// stdio transport keeps stdout reserved for protocol frames.
	mcpServer := server.NewMCPServer(core.Name(), core.Version(), log.New(core.GetLogWriter(), "", log.LstdFlags))

	// Register all tools
	toolRegistry := mcp.NewToolRegistry(mcpServer)
	if err := toolRegistry.RegisterAllTools(ctx, githubUseCase); err != nil {
		logger.Error("Failed to register tools: %v", err)
		os.Exit(1)
	}

	switch cfg.TransportMode {
	case "sse":
		startSSEServer(mcpServer, cfg.ServerPort)
	case "stdio":
		logger.Info("Listening on stdio")
		if err := mcpServer.ServeStdio(); err != nil {
			logger.Error("stdio transport error: %v", err)
			os.Exit(1)
		}
	default:
		logger.Error("Unknown transport mode: %s", cfg.TransportMode)
		os.Exit(1)
	}
}

func startSSEServer(mcpServer *server.MCPServer, port int) {
	addr := fmt.Sprintf(":%d", port)
	mcpServer.SetAddress(addr)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening on %s", addr)
		errCh <- mcpServer.ServeHTTP()
	}()

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server error: %v", err)
			os.Exit(1)
		}
	case <-stop:
		logger.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := mcpServer.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error: %v", err)
		}
		logger.Info("Server stopped")
	}
}
