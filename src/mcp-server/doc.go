// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for X.509 certificate tree
// inspection. It exposes chain assembly, remote fetching, and expiry
// checking as Model Context Protocol tools over stdio, so AI assistants
// can inspect certificate chains directly.
//
// Configuration is loaded from the file named by the CERT_TREE_CONFIG_FILE
// environment variable (JSON or YAML), with sensible defaults applied for
// any missing values.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
