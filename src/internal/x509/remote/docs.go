// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509remote retrieves certificate chains from the filesystem and
// from remote endpoints. A URL that serves PEM content directly (for
// example a published CA bundle) is downloaded and decoded; any other
// HTTPS endpoint is probed with a TLS handshake and the peer certificate
// chain presented during the handshake is captured.
//
// The handshake intentionally skips verification: the tool inspects
// whatever chain the server presents, including broken or expired ones.
package x509remote
