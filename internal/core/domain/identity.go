package domain

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// DID is an opaque 32-byte identity handle minted by the identity ledger.
type DID = common.Hash

// Principal is the address of an actor that can control identities,
// hold tokens and call the service.
type Principal = common.Address

var (
	// NoDID is the null identity. It is also the "no link" sentinel.
	NoDID = DID{}
	// NoPrincipal is the null principal, i.e. a deleted controller.
	NoPrincipal = Principal{}
)

// ParseDID parses a 0x-prefixed, 64 hex digit identity.
func ParseDID(s string) (DID, error) {
	b, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return NoDID, fmt.Errorf("parse did %q: %w", s, err)
	}
	if len(b) != common.HashLength {
		return NoDID, fmt.Errorf("parse did %q: want %d bytes, got %d", s, common.HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}

// ParsePrincipal parses a 0x-prefixed, 40 hex digit address.
func ParsePrincipal(s string) (Principal, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return NoPrincipal, fmt.Errorf("parse principal %q: missing 0x prefix", s)
	}
	if !common.IsHexAddress(s) {
		return NoPrincipal, fmt.Errorf("parse principal %q: not a hex address", s)
	}
	return common.HexToAddress(s), nil
}

// DeriveDID computes keccak256(owner || nonce) where nonce is a big-endian
// uint64. Ledgers use it so identities are unique per (owner, nonce).
func DeriveDID(owner Principal, nonce uint64) DID {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], nonce)

	h := sha3.NewLegacyKeccak256()
	h.Write(owner.Bytes())
	h.Write(n[:])
	return common.BytesToHash(h.Sum(nil))
}
