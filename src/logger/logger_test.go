// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/cert-tree/src/logger"
)

// treeLine mimics one line of the rendered chain listing, the main payload
// the CLI logger carries.
const treeLine = "\x1b[37m[1] ━ Root CA\x1b[0m\x1b[32m[VALID] [until: 2099-01-01 00:00:00]\x1b[0m"

func TestCLILoggerPassesRenderedOutputThrough(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	log.Println(treeLine)

	// The rendered tree must arrive byte for byte: no prefixes, no
	// timestamps, ANSI escapes untouched.
	assert.Equal(t, treeLine+"\n", buf.String())
}

func TestCLILoggerPrintf(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	log.Printf("Fetching chain from %s (timeout %ds)", "example.com", 10)

	assert.Equal(t, "Fetching chain from example.com (timeout 10s)\n", buf.String())
}

func TestCLILoggerMultilineReport(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	report := "Certificate Information:\n  Common Name: www.google.com\n  Is CA: false"
	log.Println(report)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Certificate Information:", lines[0])
}

func TestCLILoggerSetOutputRedirects(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	log := logger.NewCLILogger()

	log.SetOutput(&buf1)
	log.Println("chain assembled: 3 certificates")
	log.SetOutput(&buf2)
	log.Println("validation finished")

	assert.Contains(t, buf1.String(), "chain assembled")
	assert.NotContains(t, buf1.String(), "validation finished")
	assert.Contains(t, buf2.String(), "validation finished")
}

func TestCLILoggerConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(seq int) {
			defer wg.Done()
			log.Printf("[%d] └ Intermediate CA %d", seq, seq)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, goroutines)
}

func TestMCPLoggerSilentMode(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewMCPLogger(&buf, true)

	log.Printf("inspect_cert_chain: %d records", 3)
	log.Println("fetch_remote_chain finished")

	// Silent mode must write nothing so the stdio protocol stays clean.
	assert.Zero(t, buf.Len())
}

func TestMCPLoggerStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewMCPLogger(&buf, false)

	log.Printf("inspect_cert_chain: assembled %d nodes, %d roots", 3, 1)
	log.Println("check_cert_expiry: 1 certificate expiring soon")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "inspect_cert_chain: assembled 3 nodes, 1 roots", entry["message"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "check_cert_expiry: 1 certificate expiring soon", entry["message"])
}

func TestMCPLoggerNilWriterDiscards(t *testing.T) {
	log := logger.NewMCPLogger(nil, false)
	assert.NotPanics(t, func() { log.Println("no destination") })
}

func TestMCPLoggerSetOutput(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	log := logger.NewMCPLogger(&buf1, false)

	log.Println("first tool call")
	log.SetOutput(&buf2)
	log.Println("second tool call")

	assert.NotContains(t, buf1.String(), "second tool call")
	assert.Contains(t, buf2.String(), "second tool call")

	// A nil writer silences the logger without breaking it.
	log.SetOutput(nil)
	before := buf2.Len()
	log.Println("third tool call")
	assert.Equal(t, before, buf2.Len())
}

func TestMCPLoggerConcurrentEntriesStayWellFormed(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewMCPLogger(&buf, false)

	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(seq int) {
			defer wg.Done()
			log.Printf("fetch_remote_chain: captured %d certificates", seq)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, goroutines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		assert.Equal(t, "info", entry["level"])
	}
}
