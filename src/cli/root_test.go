// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/cert-tree/src/logger"
)

// Test certificate from www.google.com (valid until February 16, 2026)
const testCertPEM = `-----BEGIN CERTIFICATE-----
MIIEVzCCAz+gAwIBAgIRAIsnDh7AqstVCQTDZO49FUQwDQYJKoZIhvcNAQELBQAw
OzELMAkGA1UEBhMCVVMxHjAcBgNVBAoTFUdvb2dsZSBUcnVzdCBTZXJ2aWNlczEM
MAoGA1UEAxMDV1IyMB4XDTI1MTEyNDA4NDEwNVoXDTI2MDIxNjA4NDEwNFowGTEX
MBUGA1UEAxMOd3d3Lmdvb2dsZS5jb20wWTATBgcqhkjOPQIBBggqhkjOPQMBBwNC
AASpOrUKgQJxuBGxizx+kmyx5RrD4jQmo8qLKSuwJqGHq32bVzWZGD67H9R4OZrU
dvyPaKf5c8xcR0dfErljBgc9o4ICQTCCAj0wDgYDVR0PAQH/BAQDAgeAMBMGA1Ud
JQQMMAoGCCsGAQUFBwMBMAwGA1UdEwEB/wQCMAAwHQYDVR0OBBYEFB/jnLpRtZ7i
zZrj5pmoPbY4QlomMB8GA1UdIwQYMBaAFN4bHu15FdQ+NyTDIbvsNDltQrIwMFgG
CCsGAQUFBwEBBEwwSjAhBggrBgEFBQcwAYYVaHR0cDovL28ucGtpLmdvb2cvd3Iy
MCUGCCsGAQUFBzAChhlodHRwOi8vaS5wa2kuZ29vZy93cjIuY3J0MBkGA1UdEQQS
MBCCDnd3dy5nb29nbGUuY29tMBMGA1UdIAQMMAowCAYGZ4EMAQIBMDYGA1UdHwQv
MC0wK6ApoCeGJWh0dHA6Ly9jLnBraS5nb29nL3dyMi9HU3lUMU40UEJyZy5jcmww
ggEEBgorBgEEAdZ5AgQCBIH1BIHyAPAAdwCWl2S/VViXrfdDh2g3CEJ36fA61fak
8zZuRqQ/D8qpxgAAAZq1PQh6AAAEAwBIMEYCIQDkvhCgZXnoybm66RiqqWXZN6qE
VzPoPHn/kyXZ7Y55yAIhALTMfGlCgnC9W0iu+cR9qCmOwsEr5k6Bl7Ub2w7GCUIu
AHUASZybad4dfOz8Nt7Nh2SmuFuvCoeAGdFVUvvp6ynd+MMAAAGatT0IWAAABAMA
RjBEAiBQITcviDubQYQiIxBwjcgmkl4CH1x4RzykXJrp8cCLKwIgFpdUBEBwTjCw
wTjI3H2paYucltfUre6q/vBei3HhNqcwDQYJKoZIhvcNAQELBQADggEBAE+UAURG
T3JZxq6fjAK5Espfe49Wb0mz1kCTwNY56sbYP/Fa+Kb7kVluDIFbMN2rspADwKBu
FR7QVda3zEIu4Hj1DUmD7ecmVYCxLQ241OYdice4AfJTwDVJVymdQPFoLBP27dWK
3izwcfkPSgXIT8nHcEvDvXljn7n+n3XXuzh1Y1vFnFUa5E69JQFXXDuu/a7LiEXx
uB5j0Xga7DgFyHHHnz7zSiFr37NBb0/CH/31fkgaQPj7Fr5dyCMzMg1rQe1FGOM6
fXT8WHASUpqRebQfDy2TPE7sjve2NenS36NeiiVZXhBo5MHvGCBY3W8OYljK4zeU
uugY3q/5At03UHw=
-----END CERTIFICATE-----
`

// resetState clears package-level flag and config state between test runs.
func resetState(t *testing.T) {
	t.Helper()

	origArgs := os.Args
	t.Cleanup(func() {
		os.Args = origArgs
		cfgFile = ""
		inputFile = ""
		inputURL = ""
		interactive = false
		textMode = false
		OperationPerformed = false
		OperationPerformedSuccessfully = false
		viper.Reset()
	})
}

// runCLI executes the root command with the given arguments and captures
// everything written through the logger.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetState(t)

	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	os.Args = append([]string{"cert-tree"}, args...)
	err := Execute(context.Background(), "test", log)
	return buf.String(), err
}

func writeTestChain(t *testing.T, pem string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chain.pem")
	require.NoError(t, os.WriteFile(path, []byte(pem), 0644))
	return path
}

func TestExecuteNoInput(t *testing.T) {
	_, err := runCLI(t)
	assert.ErrorIs(t, err, ErrNoInput)
	assert.True(t, OperationPerformed)
	assert.False(t, OperationPerformedSuccessfully)
}

func TestExecuteSingleCertificateVerbose(t *testing.T) {
	path := writeTestChain(t, testCertPEM)

	out, err := runCLI(t, "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Certificate Information:")
	assert.Contains(t, out, "www.google.com")
	assert.True(t, OperationPerformedSuccessfully)
}

func TestExecuteTreeOutput(t *testing.T) {
	// Two copies of the same certificate collapse to a single subject,
	// exercising the forest path instead of the verbose report.
	path := writeTestChain(t, testCertPEM+testCertPEM)

	out, err := runCLI(t, "-f", path, "-t")
	require.NoError(t, err)

	assert.Contains(t, out, "www.google.com")
	assert.Contains(t, out, "[1]")
}

func TestExecuteJSONOutput(t *testing.T) {
	path := writeTestChain(t, testCertPEM+testCertPEM)

	out, err := runCLI(t, "-f", path, "-o", "json")
	require.NoError(t, err)

	var doc struct {
		NodeCount int `json:"nodeCount"`
		Nodes     []struct {
			Subject string `json:"subject"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 1, doc.NodeCount)
	require.Len(t, doc.Nodes, 1)
	assert.Contains(t, doc.Nodes[0].Subject, "www.google.com")
}

func TestExecuteUnknownOutputFormat(t *testing.T) {
	path := writeTestChain(t, testCertPEM+testCertPEM)

	_, err := runCLI(t, "-f", path, "-o", "graphviz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestExecuteMissingFile(t *testing.T) {
	_, err := runCLI(t, "-f", filepath.Join(t.TempDir(), "missing.pem"))
	assert.Error(t, err)
}

func TestExecuteCompletionSubcommand(t *testing.T) {
	// Completion writes directly to stdout; only the exit path matters here.
	_, err := runCLI(t, "completion", "bash")
	assert.NoError(t, err)
}

func TestRenderUnknownFormat(t *testing.T) {
	resetState(t)
	viper.Set("output", "xml")

	_, err := render(nil)
	assert.Error(t, err)
}
