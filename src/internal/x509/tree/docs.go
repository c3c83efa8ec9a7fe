// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509tree reconstructs the issuance hierarchy among a set of decoded
// [X.509] certificate records and classifies each certificate's time validity
// and chain-trust state.
//
// The package takes an unordered collection of records, groups them into one
// or more rooted trees by issuer/subject linkage, assigns each certificate a
// time-based validity classification, and assigns each certificate a chain
// validation classification describing whether its position in the
// reconstructed tree is plausible by name.
//
// Chain validation here is a subject/issuer name-matching heuristic only.
// It carries no cryptographic meaning and must not be confused with
// signature verification.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
package x509tree
