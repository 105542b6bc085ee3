package ckb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrInvalidPrivateKey is returned for secrets outside the curve's scalar range.
var ErrInvalidPrivateKey = errors.New("private key out of range")

// GenerateKeyPair generates a new random secp256k1 key pair.
func GenerateKeyPair() (*btcec.PrivateKey, *btcec.PublicKey, error) {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, nil, err
	}
	return privKey, privKey.PubKey(), nil
}

// PrivateKeyToHex renders the 32-byte secret as 0x-prefixed lowercase hex.
func PrivateKeyToHex(privKey *btcec.PrivateKey) string {
	return hexutil.Encode(privKey.Serialize())
}

// ParsePrivateKey parses a 32-byte hex secret, with or without the 0x prefix.
func ParsePrivateKey(s string) (*btcec.PrivateKey, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	raw, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(raw))
	}

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow || scalar.IsZero() {
		return nil, ErrInvalidPrivateKey
	}

	privKey, _ := btcec.PrivKeyFromBytes(raw)
	return privKey, nil
}
