// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certinfo

import (
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"strings"
)

// dateLayout is the normalized timestamp layout used for NotBefore and
// NotAfter in extracted records. The chain tree builder parses this exact
// layout back when classifying expiry.
const dateLayout = "2006-01-02 15:04:05"

// Record is the fully decoded, immutable view of one certificate. The
// subject string is the record's only identity for chain assembly; records
// are treated as plain values everywhere downstream.
type Record struct {
	Subject            string      `json:"subject" yaml:"subject"`
	Issuer             string      `json:"issuer" yaml:"issuer"`
	SerialNumber       string      `json:"serialNumber" yaml:"serialNumber"`
	NotBefore          string      `json:"notBefore" yaml:"notBefore"`
	NotAfter           string      `json:"notAfter" yaml:"notAfter"`
	PublicKeyAlgorithm string      `json:"publicKeyAlgorithm" yaml:"publicKeyAlgorithm"`
	SignatureAlgorithm string      `json:"signatureAlgorithm" yaml:"signatureAlgorithm"`
	Version            int         `json:"version" yaml:"version"`
	Extensions         []Extension `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	IsCA               bool        `json:"isCA" yaml:"isCA"`
	KeyUsage           string      `json:"keyUsage,omitempty" yaml:"keyUsage,omitempty"`
	SubjectAltNames    []string    `json:"subjectAltNames,omitempty" yaml:"subjectAltNames,omitempty"`
}

// Extension describes one certificate extension. Name is empty when no
// human-readable mapping exists for the OID.
type Extension struct {
	OID      string `json:"oid" yaml:"oid"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Critical bool   `json:"critical" yaml:"critical"`
	Value    string `json:"value" yaml:"value"`
}

// Extract converts a parsed certificate into a Record with all fields
// normalized to display form.
func Extract(cert *x509.Certificate) Record {
	rec := Record{
		Subject:            cert.Subject.String(),
		Issuer:             cert.Issuer.String(),
		SerialNumber:       formatSerial(cert),
		NotBefore:          cert.NotBefore.UTC().Format(dateLayout),
		NotAfter:           cert.NotAfter.UTC().Format(dateLayout),
		PublicKeyAlgorithm: publicKeyAlgorithm(cert),
		SignatureAlgorithm: cert.SignatureAlgorithm.String(),
		Version:            cert.Version,
		IsCA:               cert.IsCA,
		KeyUsage:           KeyUsageText(cert.KeyUsage),
		SubjectAltNames:    subjectAltNames(cert),
	}

	for _, ext := range cert.Extensions {
		oid := ext.Id.String()
		rec.Extensions = append(rec.Extensions, Extension{
			OID:      oid,
			Name:     OIDName(oid),
			Critical: ext.Critical,
			Value:    formatExtensionValue(ext.Value),
		})
	}

	return rec
}

// ExtractAll converts a slice of parsed certificates into records,
// preserving order.
func ExtractAll(certs []*x509.Certificate) []Record {
	records := make([]Record, 0, len(certs))
	for _, cert := range certs {
		records = append(records, Extract(cert))
	}
	return records
}

// formatSerial renders the serial number as spaced hex byte pairs,
// e.g. "8b 27 0e 1e c0 aa cb 55".
func formatSerial(cert *x509.Certificate) string {
	hex := fmt.Sprintf("%x", cert.SerialNumber)
	if len(hex)%2 != 0 {
		hex = "0" + hex
	}

	var sb strings.Builder
	for i := 0; i < len(hex); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hex[i : i+2])
	}
	return sb.String()
}

// publicKeyAlgorithm describes the certificate's public key, including the
// modulus size for RSA keys and the curve size for ECDSA keys.
func publicKeyAlgorithm(cert *x509.Certificate) string {
	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("RSA (%d bits)", key.N.BitLen())
	case *ecdsa.PublicKey:
		return fmt.Sprintf("ECDSA (%s)", key.Curve.Params().Name)
	case ed25519.PublicKey:
		return "Ed25519"
	case *dsa.PublicKey:
		return "DSA"
	default:
		return "Unknown"
	}
}

// subjectAltNames flattens DNS names, email addresses, IP addresses, and
// URIs into a single ordered string list.
func subjectAltNames(cert *x509.Certificate) []string {
	var names []string
	names = append(names, cert.DNSNames...)
	names = append(names, cert.EmailAddresses...)
	for _, ip := range cert.IPAddresses {
		names = append(names, ip.String())
	}
	for _, uri := range cert.URIs {
		names = append(names, uri.String())
	}
	return names
}

// maxExtensionValueLen caps how much raw extension data is rendered; the
// full DER value is rarely useful in a terminal.
const maxExtensionValueLen = 32

// formatExtensionValue renders raw extension bytes as truncated hex.
func formatExtensionValue(value []byte) string {
	if len(value) > maxExtensionValueLen {
		return fmt.Sprintf("%x… (%d bytes)", value[:maxExtensionValueLen], len(value))
	}
	return fmt.Sprintf("%x", value)
}
