package service

import (
	"crypto/ecdsa"
	"fmt"

	"did-payment-splitter/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
)

// EthSignatureService implements ports.SignatureVerifier with EIP-191
// personal-sign signatures over secp256k1.
type EthSignatureService struct{}

// NewEthSignatureService creates a new EthSignatureService.
func NewEthSignatureService() *EthSignatureService {
	return &EthSignatureService{}
}

// BuildCanonicalString constructs the canonical payload for signing.
// Format: METHOD|PATH|TIMESTAMP|NONCE|BODY
func (s *EthSignatureService) BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string {
	return fmt.Sprintf("%s|%s|%d|%s|%s", method, path, timestamp, nonce, body)
}

// Recover returns the address that signed message. Signatures are 65 bytes
// [R || S || V] with V either 0/1 or 27/28.
func (s *EthSignatureService) Recover(message string, signature []byte) (domain.Principal, error) {
	if len(signature) != crypto.SignatureLength {
		return domain.NoPrincipal, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(signature))
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return domain.NoPrincipal, fmt.Errorf("recovering signer: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Sign produces the signature a client sends for message, with V as 27/28.
func (s *EthSignatureService) Sign(key *ecdsa.PrivateKey, message string) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	if err != nil {
		return nil, fmt.Errorf("signing message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}
