package jobtoken

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
	"github.com/NevroHelios/skillsync-ledger/orm"
)

// Registry description, fixed at compile time.
const (
	RegistryName   = "SkillSync Job Postings"
	RegistrySymbol = "SSJOB"
)

var _ orm.CloneableData = (*JobToken)(nil)

// Validate ensures the token is well formed before it hits the store. The
// posting details are free text and intentionally unconstrained.
func (t *JobToken) Validate() error {
	if err := t.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := t.Creator.Validate(); err != nil {
		return errors.Wrap(err, "creator")
	}
	if t.CreatedAt < 0 {
		return errors.Wrap(errors.ErrState, "created at")
	}
	return nil
}

// Copy produces an independent copy of the token.
func (t *JobToken) Copy() orm.CloneableData {
	return &JobToken{
		Owner:        t.Owner.Clone(),
		JobID:        t.JobID,
		Title:        t.Title,
		Company:      t.Company,
		Requirements: t.Requirements,
		Creator:      t.Creator.Clone(),
		CreatedAt:    t.CreatedAt,
	}
}

var _ orm.CloneableData = (*TokenCount)(nil)

// Validate enforces that a stored count is never negative.
func (c *TokenCount) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

// Copy produces an independent copy of the count.
func (c *TokenCount) Copy() orm.CloneableData {
	return &TokenCount{Count: c.Count}
}

// AsJobToken extracts the JobToken value from the object, panics on a type
// mismatch as that is always a programmer error.
func AsJobToken(obj orm.Object) *JobToken {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*JobToken)
}

// AsTokenCount extracts the TokenCount value from the object.
func AsTokenCount(obj orm.Object) *TokenCount {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*TokenCount)
}

// TokenBucket stores job posting tokens keyed by their sequential id.
type TokenBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewTokenBucket initializes a TokenBucket with the id sequence attached.
func NewTokenBucket() TokenBucket {
	b := orm.NewBucket("jobtkn",
		orm.NewSimpleObj(nil, &JobToken{}))
	return TokenBucket{
		Bucket: b,
		idSeq:  b.Sequence("id"),
	}
}

// Build wraps a freshly issued token under the given id.
func (b TokenBucket) Build(id int64, token *JobToken) orm.Object {
	return orm.NewSimpleObj(orm.EncodeSequence(id), token)
}

// GetToken loads the token with this id, or nil if unminted.
func (b TokenBucket) GetToken(db ledger.ReadOnlyKVStore, id int64) (orm.Object, error) {
	return b.Get(db, orm.EncodeSequence(id))
}

// NextID reserves and returns the id for the next token to issue.
func (b TokenBucket) NextID(db ledger.KVStore) (int64, error) {
	return b.idSeq.NextInt(db)
}

// LatestID returns the highest id issued so far, zero before the first issue.
func (b TokenBucket) LatestID(db ledger.ReadOnlyKVStore) (int64, error) {
	latest, _, err := b.idSeq.Latest(db)
	return latest, err
}

// CountBucket stores per owner token counts keyed by owner address.
type CountBucket struct {
	orm.Bucket
}

// NewCountBucket initializes a CountBucket.
func NewCountBucket() CountBucket {
	return CountBucket{
		Bucket: orm.NewBucket("jobcnt",
			orm.NewSimpleObj(nil, &TokenCount{})),
	}
}

// GetCount returns how many tokens this address currently owns. An address
// without a record owns zero tokens.
func (b CountBucket) GetCount(db ledger.ReadOnlyKVStore, owner ledger.Address) (int64, error) {
	obj, err := b.Get(db, owner)
	if err != nil {
		return 0, err
	}
	if obj == nil {
		return 0, nil
	}
	return AsTokenCount(obj).Count, nil
}

// Shift adjusts the count of this owner by diff, which may be negative.
func (b CountBucket) Shift(db ledger.KVStore, owner ledger.Address, diff int64) error {
	cur, err := b.GetCount(db, owner)
	if err != nil {
		return err
	}
	next := cur + diff
	if next < 0 {
		return errors.Wrapf(errors.ErrState, "count of %s below zero", owner)
	}
	obj := orm.NewSimpleObj(owner, &TokenCount{Count: next})
	return b.Save(db, obj)
}
