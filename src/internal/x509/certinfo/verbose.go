// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certinfo

import (
	"fmt"
	"strings"
)

// FormatVerbose renders a single record as a multi-line text report for
// non-interactive output.
func FormatVerbose(rec Record) string {
	var sb strings.Builder

	sb.WriteString("Certificate Information:\n")
	sb.WriteString("======================\n")
	fmt.Fprintf(&sb, "CN: %s\n", ExtractCN(rec.Subject))
	fmt.Fprintf(&sb, "Issuer: %s\n", rec.Issuer)
	fmt.Fprintf(&sb, "Serial Number: %s\n", rec.SerialNumber)
	sb.WriteString("Validity:\n")
	fmt.Fprintf(&sb, "  Not Before: %s\n", rec.NotBefore)
	fmt.Fprintf(&sb, "  Not After: %s\n", rec.NotAfter)
	fmt.Fprintf(&sb, "Public Key Algorithm: %s\n", rec.PublicKeyAlgorithm)
	fmt.Fprintf(&sb, "Signature Algorithm: %s\n", rec.SignatureAlgorithm)
	fmt.Fprintf(&sb, "Version: %d\n", rec.Version)
	fmt.Fprintf(&sb, "Is CA: %t\n", rec.IsCA)

	if rec.KeyUsage != "" {
		fmt.Fprintf(&sb, "Key Usage: %s\n", rec.KeyUsage)
	}

	if len(rec.SubjectAltNames) > 0 {
		sb.WriteString("Subject Alternative Names:\n")
		for _, san := range rec.SubjectAltNames {
			fmt.Fprintf(&sb, "  %s\n", san)
		}
	}

	if len(rec.Extensions) > 0 {
		sb.WriteString("Extensions:\n")
		for _, ext := range rec.Extensions {
			name := ext.Name
			if name == "" {
				name = ext.OID
			}
			criticality := "non-critical"
			if ext.Critical {
				criticality = "critical"
			}
			fmt.Fprintf(&sb, "  %s (%s) - %s\n", name, criticality, ext.Value)
		}
	}

	return sb.String()
}
