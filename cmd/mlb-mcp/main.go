package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/statgrove/mlb-mcp/internal/common"
	"github.com/statgrove/mlb-mcp/internal/config"
	"github.com/statgrove/mlb-mcp/internal/mcp"
	"github.com/statgrove/mlb-mcp/internal/statsapi"
)

// Version is the server version reported during MCP initialization.
const Version = "1.0.0"

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "mlb-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", *configFile, err)
	}

	// Setup logging
	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := statsapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), logger)
	defer client.Close()

	// Build the tool catalog; a malformed entry is a startup error
	registry, err := mcp.NewCatalog()
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("failed to build tool catalog")
		os.Exit(1)
	}

	dispatcher := mcp.NewDispatcher(registry, client, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		Version,
		server.WithToolCapabilities(true),
	)

	count := mcp.RegisterTools(mcpServer, dispatcher)
	logger.Info().
		Int("tools", count).
		Str("base_url", client.BaseURL()).
		Msg("tool catalog registered")

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", httpServer)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"ok"}`)
	})

	logger.Info().Str("port", port).Msg("starting MCP Streamable HTTP")
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", port)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
