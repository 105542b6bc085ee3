package ckb

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// FixedPrefix is shared by every short secp256k1 address: the hrp, the
// separator and the 5-bit groups carrying the format and code-index tags.
const FixedPrefix = "ckb1qyq"

// Charset is the bech32 alphabet in index order.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// The payload bits after the tags are 00000 00100 00000 0xxxx..., so the
// first free group always has its top bit clear.
const maxFirstIndex = 16

var (
	ErrInvalidPrefix     = errors.New("invalid prefix")
	ErrInvalidCharacter  = errors.New("invalid character")
	ErrUnreachablePrefix = errors.New("unreachable prefix")
)

// PrefixError describes why a search prefix was rejected.
type PrefixError struct {
	Kind error // One of the Err* sentinels above
	Char rune  // Offending character (zero for ErrInvalidPrefix)
	Pos  int   // Byte offset of Char in the prefix
}

func (e *PrefixError) Error() string {
	switch e.Kind {
	case ErrInvalidPrefix:
		return fmt.Sprintf("address must have prefix %s", FixedPrefix)
	case ErrInvalidCharacter:
		return fmt.Sprintf("invalid char: %q at position %d", e.Char, e.Pos)
	case ErrUnreachablePrefix:
		return fmt.Sprintf("the %dth char (%q) is impossible, change your prefix", e.Pos, e.Char)
	default:
		return e.Kind.Error()
	}
}

func (e *PrefixError) Unwrap() error {
	return e.Kind
}

// IsValidChar checks if c is part of the bech32 alphabet.
func IsValidChar(c rune) bool {
	return strings.ContainsRune(Charset, c)
}

// ValidatePrefix checks that prefix can appear at the start of a short
// address and returns it unchanged.
func ValidatePrefix(prefix string) (string, error) {
	if !strings.HasPrefix(prefix, FixedPrefix) {
		return "", &PrefixError{Kind: ErrInvalidPrefix}
	}

	free := prefix[len(FixedPrefix):]
	for i, c := range free {
		if !IsValidChar(c) {
			return "", &PrefixError{Kind: ErrInvalidCharacter, Char: c, Pos: len(FixedPrefix) + i}
		}
	}

	if free != "" && strings.IndexByte(Charset, free[0]) >= maxFirstIndex {
		return "", &PrefixError{Kind: ErrUnreachablePrefix, Char: rune(free[0]), Pos: len(FixedPrefix)}
	}

	return prefix, nil
}

// ExpectedAttempts is the heuristic search space for a validated prefix:
// 32 per free character, halved for the unreachable upper half of the
// first one.
func ExpectedAttempts(prefix string) float64 {
	free := len(prefix) - len(FixedPrefix)
	if free < 0 {
		free = 0
	}
	return math.Pow(32, float64(free)) / 2
}
