// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certinfo_test

import (
	"crypto/x509"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certinfo "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/certinfo"
)

func TestExtractFields(t *testing.T) {
	decoder := x509certinfo.New()
	cert, err := decoder.Decode([]byte(testCertPEM))
	require.NoError(t, err)

	rec := x509certinfo.Extract(cert)

	assert.Contains(t, rec.Subject, "CN=www.google.com")
	assert.Contains(t, rec.Issuer, "CN=WR2")
	assert.Contains(t, rec.Issuer, "O=Google Trust Services")

	assert.Equal(t, "2025-11-24 08:41:05", rec.NotBefore)
	assert.Equal(t, "2026-02-16 08:41:04", rec.NotAfter)

	assert.True(t, strings.HasPrefix(rec.SerialNumber, "8b 27 0e"),
		"serial renders as spaced hex pairs, got %q", rec.SerialNumber)

	assert.Equal(t, "ECDSA (P-256)", rec.PublicKeyAlgorithm)
	assert.Equal(t, "SHA256-RSA", rec.SignatureAlgorithm)
	assert.Equal(t, 3, rec.Version)
	assert.False(t, rec.IsCA)
	assert.Equal(t, "Digital Signature", rec.KeyUsage)
	assert.Equal(t, []string{"www.google.com"}, rec.SubjectAltNames)
}

func TestExtractExtensions(t *testing.T) {
	decoder := x509certinfo.New()
	cert, err := decoder.Decode([]byte(testCertPEM))
	require.NoError(t, err)

	rec := x509certinfo.Extract(cert)
	require.NotEmpty(t, rec.Extensions)

	byOID := map[string]x509certinfo.Extension{}
	for _, ext := range rec.Extensions {
		byOID[ext.OID] = ext
	}

	san, ok := byOID["2.5.29.17"]
	require.True(t, ok, "certificate carries a SAN extension")
	assert.Equal(t, "Subject Alternative Name", san.Name)
	assert.NotEmpty(t, san.Value)

	keyUsage, ok := byOID["2.5.29.15"]
	require.True(t, ok)
	assert.True(t, keyUsage.Critical)
}

func TestExtractAllPreservesOrder(t *testing.T) {
	decoder := x509certinfo.New()
	cert, err := decoder.Decode([]byte(testCertPEM))
	require.NoError(t, err)

	records := x509certinfo.ExtractAll([]*x509.Certificate{cert, cert})
	require.Len(t, records, 2)
	assert.Equal(t, records[0], records[1])
}
