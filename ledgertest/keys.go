package ledgertest

import (
	"encoding/binary"
	"sync/atomic"

	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/crypto"
)

var condCounter int64

// NewCondition returns a new, unique condition. Each call returns a
// different value, deterministic within a single process run.
func NewCondition() ledger.Condition {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, uint64(atomic.AddInt64(&condCounter, 1)))
	return ledger.NewCondition("test", "cond", data)
}

// NewKey returns a new random keypair.
func NewKey() crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}
