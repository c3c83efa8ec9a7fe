// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	x509certinfo "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/certinfo"
)

// ValidityStatus classifies a certificate's time validity relative to "now".
type ValidityStatus int

const (
	// ValidityValid indicates more than the warning window remains before expiry.
	ValidityValid ValidityStatus = iota

	// ValidityExpiringSoon indicates the certificate expires within the
	// warning window (30 days by default, inclusive).
	ValidityExpiringSoon

	// ValidityExpired indicates the notAfter timestamp has already passed.
	ValidityExpired
)

// Text returns a short human-readable label for the validity status.
func (s ValidityStatus) Text() string {
	switch s {
	case ValidityExpired:
		return "✗ Expired"
	case ValidityExpiringSoon:
		return "⚠ Expiring Soon"
	default:
		return "✓ Valid"
	}
}

// ANSIColor returns the ANSI escape sequence used for this status in plain
// terminal output.
func (s ValidityStatus) ANSIColor() string {
	switch s {
	case ValidityExpired:
		return "\x1b[31m" // red
	case ValidityExpiringSoon:
		return "\x1b[33m" // yellow
	default:
		return "\x1b[32m" // green
	}
}

// TermColor returns the basic terminal color number used for this status in
// the interactive browser.
func (s ValidityStatus) TermColor() string {
	switch s {
	case ValidityExpired:
		return "1" // red
	case ValidityExpiringSoon:
		return "3" // yellow
	default:
		return "2" // green
	}
}

// String implements [fmt.Stringer] with a stable machine-friendly name.
func (s ValidityStatus) String() string {
	switch s {
	case ValidityExpired:
		return "expired"
	case ValidityExpiringSoon:
		return "expiring_soon"
	default:
		return "valid"
	}
}

// ValidationStatus classifies a certificate's position in the reconstructed
// chain. It is a name-equality check between a node's issuer and its parent's
// subject, not signature verification.
type ValidationStatus int

const (
	// ValidationUnknown is the placeholder set during assembly. Validate
	// overwrites it exactly once for every node.
	ValidationUnknown ValidationStatus = iota

	// ValidationValid indicates the node's issuer matches its parent's
	// subject (or the node is a self-signed root).
	ValidationValid

	// ValidationInvalidChain indicates the name linkage does not hold.
	ValidationInvalidChain
)

// Text returns a short human-readable label for the validation status.
func (s ValidationStatus) Text() string {
	switch s {
	case ValidationInvalidChain:
		return "✗ Invalid Chain"
	case ValidationValid:
		return "✓ Valid Chain"
	default:
		return "? Unvalidated"
	}
}

// TermColor returns the basic terminal color number used for this status in
// the interactive browser.
func (s ValidationStatus) TermColor() string {
	if s == ValidationInvalidChain {
		return "1" // red
	}
	return "2" // green
}

// String implements [fmt.Stringer] with a stable machine-friendly name.
func (s ValidationStatus) String() string {
	switch s {
	case ValidationInvalidChain:
		return "invalid_chain"
	case ValidationValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Node is one certificate's position in the reconstructed forest. A node
// exclusively owns its children; a node is never shared between parents.
//
// ValidityStatus is fixed at construction time. ValidationStatus starts at
// [ValidationUnknown] and is overwritten exactly once by [Validate].
type Node struct {
	Record           x509certinfo.Record
	Children         []*Node
	ValidityStatus   ValidityStatus
	ValidationStatus ValidationStatus
}

// Forest is an ordered list of root nodes. Root order, and child order
// within a node, follows the order in which records were first supplied.
type Forest struct {
	Roots []*Node
}

// NodeCount returns the total number of nodes reachable from all roots.
// For any input this equals the number of distinct subject values among
// the supplied records.
func (f *Forest) NodeCount() int {
	count := 0
	f.Walk(func(*Node, int) { count++ })
	return count
}

// Walk visits every node depth-first in display order, calling fn with the
// node and its depth (0 for roots).
func (f *Forest) Walk(fn func(node *Node, depth int)) {
	for _, root := range f.Roots {
		walkNode(root, 0, fn)
	}
}

func walkNode(node *Node, depth int, fn func(*Node, int)) {
	fn(node, depth)
	for _, child := range node.Children {
		walkNode(child, depth+1, fn)
	}
}
