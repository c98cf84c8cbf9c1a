package jobtoken

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
)

// Controller bundles the business logic of the job posting registry. All
// checks happen before the first write, so a returned error always leaves
// the store untouched.
type Controller struct {
	tokens TokenBucket
	counts CountBucket
}

// NewController returns a controller with freshly initialized buckets.
func NewController() Controller {
	return Controller{
		tokens: NewTokenBucket(),
		counts: NewCountBucket(),
	}
}

// Issue creates a new job posting token owned by the creator and returns its
// id. Ids are issued sequentially starting from one.
func (c Controller) Issue(db ledger.KVStore, creator ledger.Address, createdAt ledger.UnixTime, jobID, title, company, requirements string) (int64, error) {
	if len(creator) == 0 {
		return 0, errors.Wrap(errors.ErrEmpty, "creator")
	}
	if err := creator.Validate(); err != nil {
		return 0, errors.Wrap(err, "creator")
	}

	id, err := c.tokens.NextID(db)
	if err != nil {
		return 0, err
	}
	if obj, err := c.tokens.GetToken(db, id); err != nil {
		return 0, err
	} else if obj != nil {
		return 0, errors.Wrapf(errors.ErrDuplicate, "token %d", id)
	}

	token := &JobToken{
		Owner:        creator,
		JobID:        jobID,
		Title:        title,
		Company:      company,
		Requirements: requirements,
		Creator:      creator,
		CreatedAt:    createdAt,
	}
	if err := c.tokens.Save(db, c.tokens.Build(id, token)); err != nil {
		return 0, err
	}
	if err := c.counts.Shift(db, creator, 1); err != nil {
		return 0, err
	}
	return id, nil
}

// Move transfers the token to a new owner. Only the current owner may do
// this and the recipient must be a valid identity.
func (c Controller) Move(db ledger.KVStore, caller ledger.Address, id int64, to ledger.Address) error {
	if len(to) == 0 {
		return errors.Wrap(errors.ErrEmpty, "recipient")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}

	obj, err := c.tokens.GetToken(db, id)
	if err != nil {
		return err
	}
	if obj == nil {
		return errors.Wrapf(errors.ErrNotFound, "token %d", id)
	}
	token := AsJobToken(obj)
	if !token.Owner.Equals(caller) {
		return errors.Wrapf(errors.ErrUnauthorized, "token %d", id)
	}

	prev := token.Owner
	token.Owner = to.Clone()
	if err := c.tokens.Save(db, obj); err != nil {
		return err
	}
	if err := c.counts.Shift(db, prev, -1); err != nil {
		return err
	}
	return c.counts.Shift(db, to, 1)
}

// JobInfo returns the stored posting details of the token.
func (c Controller) JobInfo(db ledger.ReadOnlyKVStore, id int64) (*JobToken, error) {
	obj, err := c.tokens.GetToken(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "token %d", id)
	}
	return AsJobToken(obj), nil
}

// OwnerOf returns the current owner of the token.
func (c Controller) OwnerOf(db ledger.ReadOnlyKVStore, id int64) (ledger.Address, error) {
	token, err := c.JobInfo(db, id)
	if err != nil {
		return nil, err
	}
	return token.Owner, nil
}

// BalanceOf returns how many tokens this address owns, zero for any address
// that never held one.
func (c Controller) BalanceOf(db ledger.ReadOnlyKVStore, owner ledger.Address) (int64, error) {
	if len(owner) == 0 {
		return 0, errors.Wrap(errors.ErrEmpty, "owner")
	}
	return c.counts.GetCount(db, owner)
}

// NextTokenID returns the id the next issued token will receive.
func (c Controller) NextTokenID(db ledger.ReadOnlyKVStore) (int64, error) {
	latest, err := c.tokens.LatestID(db)
	if err != nil {
		return 0, err
	}
	return latest + 1, nil
}
