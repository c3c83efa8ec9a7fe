// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolDefinition pairs an MCP tool definition with its handler.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// createTools creates all MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - inspect_cert_chain: Assembles a certificate bundle into an issuer tree
//   - fetch_remote_chain: Fetches and assembles the chain a remote endpoint presents
//   - check_cert_expiry: Checks certificate expiry dates with configurable warnings
//
// Handlers that need defaults (warning window, fetch timeout) close over the
// server configuration.
func createTools(config *Config) []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool("inspect_cert_chain",
				mcp.WithDescription("Assemble X509 certificates into an issuer tree with validity and trust-path status"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or base64-encoded certificate data (PEM, DER, or PKCS#7 bundle)"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'tree', 'table', 'json', or 'yaml' (default: tree)"),
					mcp.DefaultString("tree"),
				),
				mcp.WithNumber("warn_days",
					mcp.Description("Days before expiry to flag a certificate as expiring soon"),
					mcp.DefaultNumber(float64(config.Defaults.WarnDays)),
				),
			),
			Handler: makeInspectChainHandler(config),
		},
		{
			Tool: mcp.NewTool("fetch_remote_chain",
				mcp.WithDescription("Fetch the certificate chain a remote endpoint presents and assemble it into an issuer tree"),
				mcp.WithString("url",
					mcp.Required(),
					mcp.Description("Target URL or hostname (https assumed when no scheme is given)"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'tree', 'table', 'json', or 'yaml' (default: tree)"),
					mcp.DefaultString("tree"),
				),
			),
			Handler: makeFetchRemoteChainHandler(config),
		},
		{
			Tool: mcp.NewTool("check_cert_expiry",
				mcp.WithDescription("Check X509 certificate expiry dates and flag certificates expiring soon"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or base64-encoded certificate data"),
				),
				mcp.WithNumber("warn_days",
					mcp.Description("Days before expiry to warn about"),
					mcp.DefaultNumber(float64(config.Defaults.WarnDays)),
				),
			),
			Handler: makeCheckExpiryHandler(config),
		},
	}
}
