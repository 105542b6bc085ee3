package ckb

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		prefix  string
		wantErr error
		char    rune
		pos     int
	}{
		{prefix: "ckb1qyq"},
		{prefix: "ckb1qyqq"},
		{prefix: "ckb1qyq0"},    // index 15, last reachable
		{prefix: "ckb1qyqfle5"}, // golden address prefix
		{prefix: "ckb1qyq0l7am"},
		{prefix: goldenAddress},

		{prefix: "", wantErr: ErrInvalidPrefix},
		{prefix: "ckb1qy", wantErr: ErrInvalidPrefix},
		{prefix: "ckt1qyq", wantErr: ErrInvalidPrefix},
		{prefix: "CKB1QYQ", wantErr: ErrInvalidPrefix},
		{prefix: "ckb1qypq", wantErr: ErrInvalidPrefix},

		{prefix: "ckb1qyqb", wantErr: ErrInvalidCharacter, char: 'b', pos: 7},
		{prefix: "ckb1qyqq1", wantErr: ErrInvalidCharacter, char: '1', pos: 8},
		{prefix: "ckb1qyqqqio", wantErr: ErrInvalidCharacter, char: 'i', pos: 9},
		{prefix: "ckb1qyqQ", wantErr: ErrInvalidCharacter, char: 'Q', pos: 7},
		{prefix: "ckb1qyqsb", wantErr: ErrInvalidCharacter, char: 'b', pos: 8},

		{prefix: "ckb1qyqs", wantErr: ErrUnreachablePrefix, char: 's', pos: 7},
		{prefix: "ckb1qyql", wantErr: ErrUnreachablePrefix, char: 'l', pos: 7},
		{prefix: "ckb1qyq3q", wantErr: ErrUnreachablePrefix, char: '3', pos: 7},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, err := ValidatePrefix(tt.prefix)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidatePrefix(%q): %v", tt.prefix, err)
				}
				if got != tt.prefix {
					t.Fatalf("ValidatePrefix(%q) = %q", tt.prefix, got)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidatePrefix(%q) error = %v, want %v", tt.prefix, err, tt.wantErr)
			}
			var perr *PrefixError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *PrefixError", err)
			}
			if perr.Char != tt.char || perr.Pos != tt.pos {
				t.Fatalf("PrefixError char/pos = %q/%d, want %q/%d", perr.Char, perr.Pos, tt.char, tt.pos)
			}
			if perr.Char != 0 && !strings.ContainsRune(err.Error(), perr.Char) {
				t.Fatalf("message %q does not name %q", err.Error(), perr.Char)
			}
		})
	}
}

func TestValidatePrefixFirstFreeIndex(t *testing.T) {
	for i, c := range Charset {
		_, err := ValidatePrefix(FixedPrefix + string(c))
		if i < 16 && err != nil {
			t.Errorf("%q (index %d) rejected: %v", c, i, err)
		}
		if i >= 16 && !errors.Is(err, ErrUnreachablePrefix) {
			t.Errorf("%q (index %d) error = %v, want ErrUnreachablePrefix", c, i, err)
		}
	}
}

func TestExpectedAttempts(t *testing.T) {
	tests := []struct {
		prefix string
		want   float64
	}{
		{"ckb1qyq", 0.5},
		{"ckb1qyqq", 16},
		{"ckb1qyqqq", 512},
		{"ckb1qyqqqqq", 524288},
	}
	for _, tt := range tests {
		if got := ExpectedAttempts(tt.prefix); got != tt.want {
			t.Errorf("ExpectedAttempts(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestCKBMatcher(t *testing.T) {
	m := NewCKBMatcher("ckb1qyqfle5")
	if !m.Matches(goldenAddress) {
		t.Fatal("golden address should match its own prefix")
	}
	if m.Matches("ckb1qyqfle4hj4lrrwl8a5l6600td6tt67c8ch8qehxkt2") {
		t.Fatal("unexpected match")
	}
	if m.Matches("ckb1qyq") {
		t.Fatal("shorter address must not match")
	}
	if m.Prefix() != "ckb1qyqfle5" {
		t.Fatalf("Prefix() = %q", m.Prefix())
	}
}
