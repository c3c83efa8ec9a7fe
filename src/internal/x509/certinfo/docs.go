// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certinfo decodes [X.509] certificates from PEM, DER, and
// PKCS7 input and extracts them into fully decoded, immutable [Record]
// values consumed by the chain tree builder and the presentation layers.
//
// All parsing happens here; downstream packages only ever see plain
// strings, booleans, and numbers.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
package x509certinfo
