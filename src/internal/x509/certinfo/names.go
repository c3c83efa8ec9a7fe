// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certinfo

import (
	"crypto/x509"
	"strings"
)

// oidNames maps well-known extension OIDs to human-readable names.
var oidNames = map[string]string{
	// Standard X.509 extensions
	"2.5.29.14": "Subject Key Identifier",
	"2.5.29.15": "Key Usage",
	"2.5.29.16": "Private Key Usage Period",
	"2.5.29.17": "Subject Alternative Name",
	"2.5.29.18": "Issuer Alternative Name",
	"2.5.29.19": "Basic Constraints",
	"2.5.29.30": "Name Constraints",
	"2.5.29.31": "CRL Distribution Points",
	"2.5.29.32": "Certificate Policies",
	"2.5.29.33": "Policy Mappings",
	"2.5.29.35": "Authority Key Identifier",
	"2.5.29.36": "Policy Constraints",
	"2.5.29.37": "Extended Key Usage",
	"2.5.29.46": "Freshest CRL",

	// PKIX extensions
	"1.3.6.1.5.5.7.1.1": "Authority Information Access",

	// Certificate Transparency
	"1.3.6.1.4.1.11129.2.4.2": "Signed Certificate Timestamp",

	// Microsoft extensions
	"1.3.6.1.4.1.311.20.2": "Microsoft Smart Card Login",
	"1.3.6.1.4.1.311.21.1": "Microsoft Individual Code Signing",

	// Entrust extensions
	"1.2.840.113533.7.65.0": "Entrust Version Information",

	// Netscape extensions
	"2.16.840.1.113730.1.1": "Netscape Certificate Type",
}

// OIDName returns the human-readable name for a well-known extension OID,
// or the empty string when no mapping exists.
func OIDName(oid string) string {
	return oidNames[oid]
}

// ExtractCN returns the common name component of a distinguished name in
// "CN=...,O=...,C=..." form. When no CN attribute is present, the whole
// distinguished name is returned as a fallback.
func ExtractCN(dn string) string {
	for _, part := range strings.Split(dn, ",") {
		trimmed := strings.TrimSpace(part)
		if cn, ok := strings.CutPrefix(trimmed, "CN="); ok {
			return cn
		}
	}
	return dn
}

// keyUsageBits pairs each x509 key usage flag with its display name, in
// canonical order.
var keyUsageBits = []struct {
	usage x509.KeyUsage
	name  string
}{
	{x509.KeyUsageDigitalSignature, "Digital Signature"},
	{x509.KeyUsageContentCommitment, "Content Commitment"},
	{x509.KeyUsageKeyEncipherment, "Key Encipherment"},
	{x509.KeyUsageDataEncipherment, "Data Encipherment"},
	{x509.KeyUsageKeyAgreement, "Key Agreement"},
	{x509.KeyUsageCertSign, "Certificate Sign"},
	{x509.KeyUsageCRLSign, "CRL Sign"},
	{x509.KeyUsageEncipherOnly, "Encipher Only"},
	{x509.KeyUsageDecipherOnly, "Decipher Only"},
}

// KeyUsageText renders a key usage bitmask as a comma-separated list of
// display names. An empty bitmask yields the empty string.
func KeyUsageText(usage x509.KeyUsage) string {
	var names []string
	for _, bit := range keyUsageBits {
		if usage&bit.usage != 0 {
			names = append(names, bit.name)
		}
	}
	return strings.Join(names, ", ")
}

// ExplainSignatureAlgorithm describes a signature algorithm in plain
// English for the verbose and interactive views.
func ExplainSignatureAlgorithm(alg string) string {
	switch {
	case strings.Contains(alg, "RSA"):
		return "This certificate uses RSA encryption with hashing. RSA is like a digital lock that only the certificate issuer has the key to open. The hashing creates a unique fingerprint of the certificate data. Together, they create a digital signature that proves the certificate is genuine and hasn't been tampered with. This is essential for secure websites and encrypted communications."
	case strings.Contains(alg, "ECDSA"):
		return "This certificate uses Elliptic Curve Digital Signature Algorithm (ECDSA). It's a modern, efficient way to create digital signatures using advanced mathematics with elliptic curves. Like RSA, it creates a unique signature that proves the certificate's authenticity, but it's faster and uses smaller keys. This helps keep internet communications secure and private."
	case strings.Contains(alg, "DSA"):
		return "This certificate uses Digital Signature Algorithm (DSA). It's a method for creating digital signatures that verify the authenticity of the certificate. Using mathematical techniques, it creates a unique code that only the legitimate issuer can produce. This prevents fake certificates and ensures trust in online communications."
	default:
		return "This is a cryptographic signature method that verifies the certificate's authenticity. It uses mathematical algorithms to create a unique digital signature that proves the certificate is legitimate and hasn't been altered. This is crucial for establishing secure and trustworthy connections on the internet."
	}
}
