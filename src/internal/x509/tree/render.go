// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	x509certinfo "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/certinfo"
)

// dateColumnStart is the fixed column where expiry dates begin in text
// output, so dates align regardless of tree depth.
const dateColumnStart = 78

// ansiReset clears terminal colors after a styled span.
const ansiReset = "\x1b[0m"

// statusLabel returns the uppercase status tag used in text output.
func statusLabel(s ValidityStatus) string {
	switch s {
	case ValidityExpired:
		return "EXPIRED"
	case ValidityExpiringSoon:
		return "EXPIRES SOON"
	default:
		return "VALID"
	}
}

// RenderText renders the forest as sequence-numbered, ANSI-colored tree
// text with expiry dates aligned to a fixed column.
func RenderText(f *Forest) string {
	var sb strings.Builder
	sequence := 0
	for _, root := range f.Roots {
		renderTextNode(&sb, root, "━ ", 0, &sequence)
	}
	return sb.String()
}

func renderTextNode(sb *strings.Builder, node *Node, prefix string, depth int, sequence *int) {
	*sequence++

	cn := x509certinfo.ExtractCN(node.Record.Subject)

	// The prefix grows with depth and can pass the date column entirely;
	// clamp so the name space never goes negative on deep chains.
	availableNameSpace := dateColumnStart - len(prefix) - 5
	if availableNameSpace < 0 {
		availableNameSpace = 0
	}
	displayName := cn
	if len(cn) > availableNameSpace {
		truncateLen := availableNameSpace
		if availableNameSpace > 3 {
			truncateLen = availableNameSpace - 3
		}
		displayName = cn[:truncateLen] + "..."
	}

	// Pad out to the fixed date column.
	paddingNeeded := 1
	if nameEnd := len(prefix) + len(displayName); nameEnd < dateColumnStart {
		paddingNeeded = dateColumnStart - nameEnd
	}
	padding := strings.Repeat(" ", paddingNeeded)

	fmt.Fprintf(sb, "\x1b[37m[%d] %s%s%s%s%s[%s] [until: %s]%s\n",
		*sequence, prefix, displayName, padding, ansiReset,
		node.ValidityStatus.ANSIColor(), statusLabel(node.ValidityStatus),
		node.Record.NotAfter, ansiReset)

	for _, child := range node.Children {
		childIndent := strings.Repeat(" ", 5+depth*4)
		renderTextNode(sb, child, childIndent+"└ ", depth+1, sequence)
	}
}

// RenderASCIITree renders the forest as a connector-style ASCII tree with
// one line per certificate, annotated with chain validation state.
func RenderASCIITree(f *Forest) string {
	if len(f.Roots) == 0 {
		return "No certificates in chain"
	}

	var sb strings.Builder
	for _, root := range f.Roots {
		renderASCIINode(&sb, root, "")
	}
	return sb.String()
}

func renderASCIINode(sb *strings.Builder, node *Node, indent string) {
	statusIcon := "✓"
	if node.ValidationStatus == ValidationInvalidChain {
		statusIcon = "✗"
	}

	connector := "├── "
	if len(node.Children) == 0 {
		connector = "└── "
	}

	fmt.Fprintf(sb, "%s%s[%s] %s\n", indent, connector, statusIcon,
		x509certinfo.ExtractCN(node.Record.Subject))

	for _, child := range node.Children {
		renderASCIINode(sb, child, indent+"    ")
	}
}

// RenderTable renders the forest as a formatted markdown table showing
// position, subject, issuer, expiry, and both classification states.
func RenderTable(f *Forest) string {
	if len(f.Roots) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Subject", "Issuer", "Valid Until", "Validity", "Chain"})

	var rows [][]string
	index := 0
	f.Walk(func(node *Node, depth int) {
		index++
		rows = append(rows, []string{
			fmt.Sprintf("%d", index),
			strings.Repeat("  ", depth) + x509certinfo.ExtractCN(node.Record.Subject),
			x509certinfo.ExtractCN(node.Record.Issuer),
			node.Record.NotAfter,
			node.ValidityStatus.String(),
			node.ValidationStatus.String(),
		})
	})

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
