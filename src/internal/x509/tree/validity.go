// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import "time"

// DefaultWarnDays is the expiry warning window applied when a [Classifier]
// does not override it. A certificate with 0 to 30 days (inclusive)
// remaining is classified as expiring soon.
const DefaultWarnDays = 30

// dateLayout is the normalized timestamp layout produced by the decoder.
const dateLayout = "2006-01-02 15:04:05"

// fallbackLayouts are tried when the normalized layout does not match.
// RFC 2822 style timestamps are accepted for backward compatibility with
// decoders that never normalized their output.
var fallbackLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
}

// Classifier turns a certificate's notAfter timestamp text into a
// [ValidityStatus]. It is a pure function of the text, the injected clock,
// and the warning window; it performs no I/O and never fails.
type Classifier struct {
	// Now supplies the current time. Defaults to [time.Now] via NewClassifier.
	Now func() time.Time

	// WarnDays is the expiring-soon window in days, inclusive.
	WarnDays int
}

// NewClassifier returns a Classifier with the wall clock and the default
// 30-day warning window.
func NewClassifier() *Classifier {
	return &Classifier{
		Now:      time.Now,
		WarnDays: DefaultWarnDays,
	}
}

// Classify returns the validity status for a notAfter timestamp text.
//
// A timestamp that cannot be parsed under any accepted layout yields
// [ValidityValid] so that one malformed record never fails a whole
// assembly. Expired certificates with malformed timestamps are therefore
// reported as valid.
func (c *Classifier) Classify(notAfter string) ValidityStatus {
	expiry, err := parseExpiry(notAfter)
	if err != nil {
		return ValidityValid
	}

	now := c.Now()
	if expiry.Before(now) {
		return ValidityExpired
	}

	daysLeft := int(expiry.Sub(now).Hours() / 24)
	if daysLeft <= c.WarnDays {
		return ValidityExpiringSoon
	}

	return ValidityValid
}

// parseExpiry parses a notAfter timestamp under the normalized layout
// first, then the RFC 2822 style fallbacks. Zone-less timestamps are
// interpreted as UTC, matching the decoder's normalization.
func parseExpiry(notAfter string) (time.Time, error) {
	expiry, err := time.Parse(dateLayout, notAfter)
	if err == nil {
		return expiry, nil
	}

	for _, layout := range fallbackLayouts {
		if expiry, err = time.Parse(layout, notAfter); err == nil {
			return expiry, nil
		}
	}

	return time.Time{}, err
}
