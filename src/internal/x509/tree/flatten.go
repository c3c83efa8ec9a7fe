// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	"fmt"
	"strings"

	x509certinfo "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/certinfo"
)

// DisplayItem is one row of the flattened forest, as consumed by the
// interactive browser and the table renderer.
type DisplayItem struct {
	// DisplayName carries the sequence number, depth indentation, and CN.
	DisplayName string

	// ValidUntil is the record's notAfter text.
	ValidUntil string

	ValidityStatus   ValidityStatus
	ValidationStatus ValidationStatus

	Record x509certinfo.Record
}

// Flatten converts the forest into depth-first display items in render
// order. The forest is only read, never mutated.
func Flatten(f *Forest) []DisplayItem {
	var items []DisplayItem
	line := 0
	f.Walk(func(node *Node, depth int) {
		line++
		items = append(items, DisplayItem{
			DisplayName: fmt.Sprintf("[%d] %s%s", line,
				strings.Repeat("  ", depth),
				x509certinfo.ExtractCN(node.Record.Subject)),
			ValidUntil:       node.Record.NotAfter,
			ValidityStatus:   node.ValidityStatus,
			ValidationStatus: node.ValidationStatus,
			Record:           node.Record,
		})
	})
	return items
}
