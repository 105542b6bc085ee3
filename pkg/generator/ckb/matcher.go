package ckb

import "strings"

// CKBMatcher handles prefix matching for CKB addresses.
// Bech32 output is always lowercase and the prefix is validated up front,
// so matching is a plain byte comparison.
type CKBMatcher struct {
	prefix string
}

// NewCKBMatcher creates a matcher for an already validated prefix.
func NewCKBMatcher(prefix string) *CKBMatcher {
	return &CKBMatcher{prefix: prefix}
}

// Matches checks if the address starts with the target prefix.
func (m *CKBMatcher) Matches(address string) bool {
	return strings.HasPrefix(address, m.prefix)
}

// Prefix returns the target prefix.
func (m *CKBMatcher) Prefix() string {
	return m.prefix
}
