package ledger

import (
	common "github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error response from a Check call.
type CheckResult struct {
	// Data is a machine-parseable return value, like the id of a created
	// entity.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64
}

// DeliverResult captures any non-error response from a Deliver call.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a created
	// entity.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// Tags, if present, describe the state transition for external
	// observers. They form an append-only audit log that the ledger
	// itself never reads back.
	Tags []common.KVPair
	// GasUsed is currently an unused field.
	GasUsed int64
}

// Tag is a single key/value pair attached to a DeliverResult.
type Tag = common.KVPair

// Pair is a helper to build a tag in a single call.
func Pair(key, value string) Tag {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}
