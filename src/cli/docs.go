// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli implements the command-line interface for the certificate
// tree inspector. It loads certificate chains from files or remote
// endpoints, assembles them into issuer trees, and renders the result as
// an interactive TUI, an ANSI text listing, a markdown table, or a
// JSON/YAML export.
//
// Configuration is layered through [viper]: command-line flags override
// environment variables (CERT_TREE_* prefix), which override an optional
// .cert-tree.yaml config file.
//
// [viper]: https://github.com/spf13/viper
package cli
