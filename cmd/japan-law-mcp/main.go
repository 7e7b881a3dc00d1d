// japan-law-mcp: Japanese legislation MCP server
//
// Exposes a local corpus of Japanese laws to any MCP-capable AI tool:
// full-text search, provision retrieval, and citation parsing,
// formatting, and validation over stdio transport.
//
// Usage:
//
//	japan-law-mcp serve    # Start MCP server (stdio transport)
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/config"
	lawserver "github.com/Ansvar-Systems/japan-law-mcp/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("japan-law-mcp v%s\n", lawserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("LAWDB_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s, cleanup, err := lawserver.New(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Interrupt handling: the stdio server shuts down when stdin closes,
	// but a signal should still run cleanup instead of killing us.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(0)
	}()

	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `japan-law-mcp v%s — Japanese legislation MCP server

Usage:
  japan-law-mcp serve    Start the MCP server (stdio transport)

The corpus database is built with the lawdb CLI. Configuration is read
from japan-law-mcp.yaml (or the file named by LAWDB_CONFIG), with
LAWDB_PATH overriding the database location.

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "japan-law": {
        "command": "japan-law-mcp",
        "args": ["serve"]
      }
    }
  }
`, lawserver.Version)
}
