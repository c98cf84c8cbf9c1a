package hiretoken

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/orm"
)

// Registry description, fixed at compile time.
const (
	RegistryName   = "SkillSync Hire"
	RegistrySymbol = "SSHIRE"
)

var _ orm.CloneableData = (*HireToken)(nil)

// Validate accepts any content. The hire registry records mint requests
// verbatim, including an unset owner.
func (t *HireToken) Validate() error {
	return nil
}

// Copy produces an independent copy of the token.
func (t *HireToken) Copy() orm.CloneableData {
	return &HireToken{
		Owner:   t.Owner.Clone(),
		JobID:   t.JobID,
		Company: t.Company,
		Title:   t.Title,
		URI:     t.URI,
	}
}

// AsHireToken extracts the HireToken value from the object.
func AsHireToken(obj orm.Object) *HireToken {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*HireToken)
}

// TokenBucket stores hire tokens keyed by their sequential id. Unlike the
// job posting registry, ids here start at zero, so the sequence state equals
// the number of minted tokens.
type TokenBucket struct {
	orm.Bucket
	supply orm.Sequence
}

// NewTokenBucket initializes a TokenBucket.
func NewTokenBucket() TokenBucket {
	b := orm.NewBucket("hiretkn",
		orm.NewSimpleObj(nil, &HireToken{}))
	return TokenBucket{
		Bucket: b,
		supply: b.Sequence("supply"),
	}
}

// Build wraps a freshly minted token under the given id.
func (b TokenBucket) Build(id int64, token *HireToken) orm.Object {
	return orm.NewSimpleObj(orm.EncodeSequence(id), token)
}

// GetToken loads the token with this id, or nil if unminted.
func (b TokenBucket) GetToken(db ledger.ReadOnlyKVStore, id int64) (orm.Object, error) {
	return b.Get(db, orm.EncodeSequence(id))
}

// Supply returns the number of tokens minted so far.
func (b TokenBucket) Supply(db ledger.ReadOnlyKVStore) (int64, error) {
	latest, _, err := b.supply.Latest(db)
	return latest, err
}

// BumpSupply increases the supply counter and returns the new value.
func (b TokenBucket) BumpSupply(db ledger.KVStore) (int64, error) {
	return b.supply.NextInt(db)
}
