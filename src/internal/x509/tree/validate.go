// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

// Validate visits every node of an assembled forest exactly once and sets
// its ValidationStatus:
//
//   - A root is [ValidationValid] if its subject equals its own issuer
//     (self-signed), otherwise [ValidationInvalidChain]. A root produced
//     by the orphan sweep that is not self-signed is therefore flagged
//     invalid even though it heads a tree; this marks dangling
//     certificates whose true issuer was never supplied.
//   - A non-root node is [ValidationValid] if its parent's subject equals
//     this node's issuer exactly (case-sensitive), otherwise
//     [ValidationInvalidChain].
//
// Each node's status depends only on itself and its immediate parent. An
// invalid parent does not force its children invalid; traversal order has
// no effect on the result.
//
// This is a pure name-equality check with no cryptographic meaning. After
// Validate returns, the forest is final and callers must treat it as
// read-only.
func Validate(f *Forest) {
	for _, root := range f.Roots {
		validateNode(root, nil)
	}
}

func validateNode(node, parent *Node) {
	switch {
	case parent != nil:
		if parent.Record.Subject == node.Record.Issuer {
			node.ValidationStatus = ValidationValid
		} else {
			node.ValidationStatus = ValidationInvalidChain
		}
	case node.Record.Subject == node.Record.Issuer:
		node.ValidationStatus = ValidationValid
	default:
		node.ValidationStatus = ValidationInvalidChain
	}

	for _, child := range node.Children {
		validateNode(child, node)
	}
}
