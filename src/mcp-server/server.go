// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/cert-tree/src/version"
)

var appVersion = version.Version // default version

// serverInstructions tells connected clients what the server is for.
const serverInstructions = `This server inspects X509 certificate chains.
Use inspect_cert_chain to assemble a certificate bundle into an issuer tree,
fetch_remote_chain to capture and assemble the chain a remote endpoint presents,
and check_cert_expiry to review expiry dates. Trust-path status is derived from
subject/issuer name matching, not cryptographic signature verification.`

// GetVersion returns the current version of the MCP server.
// The version is set during server initialization via the Run function.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server with the certificate tree inspection tools.
//
// Server Lifecycle:
//  1. Load configuration from CERT_TREE_CONFIG_FILE (JSON or YAML)
//  2. Register the inspection tools
//  3. Set up signal handling for graceful shutdown
//  4. Serve MCP over stdio until the client disconnects or a signal arrives
//
// Graceful Shutdown:
//   - Responds to SIGINT (Ctrl+C) and SIGTERM signals
//   - Returns a wrapped context.Canceled error on signal-based shutdown
func Run(version string) error {
	// Set the version for GetVersion
	appVersion = version

	config, err := loadConfig(os.Getenv(configEnvVar))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s := server.NewMCPServer(
		"cert-tree",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(serverInstructions),
	)

	for _, tool := range createTools(config) {
		s.AddTool(tool.Tool, tool.Handler)
	}

	// Create cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		// Graceful shutdown triggered by signal
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
