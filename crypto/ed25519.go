package crypto

import (
	"golang.org/x/crypto/ed25519"

	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
)

// ExtensionName is used to construct signature conditions.
const ExtensionName = "sigs"

// Signer is the interface for signing transactions.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() PublicKey
}

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte
}

// Verify verifies the signature was created with this message and public key.
func (p PublicKey) Verify(message, sig []byte) bool {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig)
}

// Condition encodes the public key into a ledger permission.
func (p PublicKey) Condition() ledger.Condition {
	return ledger.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is a shortcut to the address of the key condition.
func (p PublicKey) Address() ledger.Address {
	return p.Condition().Address()
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte
}

var _ Signer = (*PrivateKey)(nil)

// Sign returns a matching signature for this private key.
func (p PrivateKey) Sign(message []byte) ([]byte, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "invalid key size")
	}
	return ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message), nil
}

// PublicKey returns the corresponding PublicKey.
func (p PrivateKey) PublicKey() PublicKey {
	priv := ed25519.PrivateKey(p.Ed25519)
	return PublicKey{
		Ed25519: []byte(priv.Public().(ed25519.PublicKey)),
	}
}

// GenPrivKeyEd25519 returns a random new private key.
func GenPrivKeyEd25519() PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) PrivateKey {
	return PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
