// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tui implements the interactive terminal browser for certificate
// trees. It presents the assembled chain as a navigable list alongside a
// scrollable details pane, built on [Bubble Tea] with [Lip Gloss] styling.
//
// Key bindings:
//   - up/down or k/j: move the selection
//   - tab: switch focus between the list and the details pane
//   - pgup/pgdown: scroll the details pane
//   - t: leave the TUI and print the plain text rendering instead
//   - q, esc, or ctrl+c: quit
//
// [Bubble Tea]: https://github.com/charmbracelet/bubbletea
// [Lip Gloss]: https://github.com/charmbracelet/lipgloss
package tui
