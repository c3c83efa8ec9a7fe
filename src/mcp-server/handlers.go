// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	x509certinfo "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/certinfo"
	x509remote "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/remote"
	x509tree "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/tree"
)

// readCertificateInput resolves the certificate parameter: a readable file
// path wins, otherwise the input is treated as base64-encoded data.
func readCertificateInput(input string) ([]byte, error) {
	if data, err := os.ReadFile(input); err == nil {
		return data, nil
	}
	if decoded, err := base64.StdEncoding.DecodeString(input); err == nil {
		return decoded, nil
	}
	return nil, fmt.Errorf("not a valid file path or base64 data")
}

// decodeRecords decodes a certificate bundle into extracted records.
// Bundles that are not plain PEM/DER concatenations (PKCS#7) fall back
// to the single-certificate decode path.
func decodeRecords(data []byte) ([]x509certinfo.Record, error) {
	decoder := x509certinfo.New()

	certs, err := decoder.DecodeMultiple(data)
	if err != nil {
		cert, singleErr := decoder.Decode(data)
		if singleErr != nil {
			return nil, err
		}
		certs = []*x509.Certificate{cert}
	}
	return x509certinfo.ExtractAll(certs), nil
}

// renderForest serializes a forest in the requested tool output format.
// The tree format uses the plain ASCII rendering since MCP clients are not
// ANSI terminals.
func renderForest(forest *x509tree.Forest, format string) (string, error) {
	switch format {
	case "tree":
		return x509tree.RenderASCIITree(forest), nil
	case "table":
		return x509tree.RenderTable(forest), nil
	case "json":
		data, err := x509tree.ExportJSON(forest)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "yaml":
		data, err := x509tree.ExportYAML(forest)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// buildForest assembles records with the requested warning window applied.
func buildForest(records []x509certinfo.Record, warnDays int) *x509tree.Forest {
	classifier := x509tree.NewClassifier()
	if warnDays > 0 {
		classifier.WarnDays = warnDays
	}
	return x509tree.BuildForest(records, classifier)
}

// makeInspectChainHandler returns the handler for the inspect_cert_chain tool.
func makeInspectChainHandler(config *Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		certInput, err := request.RequireString("certificate")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
		}

		format := request.GetString("format", "tree")
		warnDays := request.GetInt("warn_days", config.Defaults.WarnDays)

		certData, err := readCertificateInput(certInput)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
		}

		records, err := decodeRecords(certData)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err)), nil
		}

		out, err := renderForest(buildForest(records, warnDays), format)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(out), nil
	}
}

// makeFetchRemoteChainHandler returns the handler for the fetch_remote_chain tool.
func makeFetchRemoteChainHandler(config *Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rawURL, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("url parameter required: %v", err)), nil
		}

		format := request.GetString("format", "tree")

		fetcher := x509remote.NewFetcher(GetVersion())
		fetcher.HTTPConfig.Timeout = time.Duration(config.Defaults.Timeout) * time.Second

		certs, err := fetcher.FetchChain(ctx, rawURL)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to fetch certificate chain: %v", err)), nil
		}

		records := x509certinfo.ExtractAll(certs)
		out, err := renderForest(buildForest(records, config.Defaults.WarnDays), format)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(out), nil
	}
}

// makeCheckExpiryHandler returns the handler for the check_cert_expiry tool.
func makeCheckExpiryHandler(config *Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		certInput, err := request.RequireString("certificate")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
		}

		warnDays := request.GetInt("warn_days", config.Defaults.WarnDays)

		certData, err := readCertificateInput(certInput)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
		}

		records, err := decodeRecords(certData)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err)), nil
		}

		classifier := x509tree.NewClassifier()
		if warnDays > 0 {
			classifier.WarnDays = warnDays
		}

		out := fmt.Sprintf("Certificate Expiry Report (warning window: %d days)\n\n", classifier.WarnDays)
		for i, rec := range records {
			status := classifier.Classify(rec.NotAfter)
			out += fmt.Sprintf("[%d] %s\n    Status: %s\n    Expires: %s\n",
				i+1, x509certinfo.ExtractCN(rec.Subject), status.Text(), rec.NotAfter)
		}

		return mcp.NewToolResultText(out), nil
	}
}
