// Package ckb provides Nervos CKB short-address vanity generation support.
// Addresses use the secp256k1/blake160 lock with the "ckb" mainnet prefix.
package ckb

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/bech32"
	blake2b "github.com/minio/blake2b-simd"
)

const (
	// HRP is the human-readable part of mainnet addresses.
	HRP = "ckb"

	// FormatTypeShort marks the short address payload format.
	FormatTypeShort byte = 0x01
	// CodeIndexSecp256k1Single selects the secp256k1/blake160 lock script.
	CodeIndexSecp256k1Single byte = 0x00

	// Blake160Size is the length of the truncated public key hash.
	Blake160Size = 20
)

// hashPersonalization is the blake2b personal string used across CKB.
var hashPersonalization = []byte("ckb-default-hash")

// Hash computes the 32-byte CKB default hash of data.
func Hash(data []byte) []byte {
	h, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: hashPersonalization,
	})
	if err != nil {
		// Only reachable with an invalid static config.
		panic(err)
	}
	h.Write(data)
	return h.Sum(nil)
}

// Blake160 returns the first 20 bytes of the CKB default hash of data.
func Blake160(data []byte) []byte {
	return Hash(data)[:Blake160Size]
}

// DeriveAddress derives the short CKB address of a public key.
// Address = Bech32("ckb", [0x01, 0x00] ++ blake160(compressed_pubkey))
func DeriveAddress(pubKey *btcec.PublicKey) string {
	payload := make([]byte, 2, 2+Blake160Size)
	payload[0] = FormatTypeShort
	payload[1] = CodeIndexSecp256k1Single
	payload = append(payload, Blake160(pubKey.SerializeCompressed())...)

	// Convert to 5-bit groups for Bech32
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return ""
	}

	addr, err := bech32.Encode(HRP, data)
	if err != nil {
		return ""
	}
	return addr
}

// AddressFromPrivateKey derives the short CKB address owned by privKey.
func AddressFromPrivateKey(privKey *btcec.PrivateKey) string {
	return DeriveAddress(privKey.PubKey())
}
