package app

import (
	"context"
	"testing"

	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
	"github.com/NevroHelios/skillsync-ledger/ledgertest"
	"github.com/NevroHelios/skillsync-ledger/ledgertest/assert"
	"github.com/NevroHelios/skillsync-ledger/store"
)

// writingHandler writes a key and then optionally fails, to exercise
// partial write rollback.
type writingHandler struct {
	key, value []byte
	err        error
}

var _ ledger.Handler = writingHandler{}

func (h writingHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{}, h.err
}

func (h writingHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, h.err
}

func TestSavepointDiscardsPartialWrites(t *testing.T) {
	db := store.MemStore()
	fail := errors.Wrap(errors.ErrHuman, "exploded after writing")
	h := ChainDecorators(
		NewSavepoint().OnDeliver(),
	).WithHandler(writingHandler{key: []byte("k"), value: []byte("v"), err: fail})

	_, err := h.Deliver(context.Background(), db, &ledgertest.Tx{})
	assert.IsErr(t, errors.ErrHuman, err)

	got, err := db.Get([]byte("k"))
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestSavepointCommitsOnSuccess(t *testing.T) {
	db := store.MemStore()
	h := ChainDecorators(
		NewSavepoint().OnDeliver().OnCheck(),
	).WithHandler(writingHandler{key: []byte("k"), value: []byte("v")})

	_, err := h.Deliver(context.Background(), db, &ledgertest.Tx{})
	assert.Nil(t, err)

	got, err := db.Get([]byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestSavepointInactiveWithoutTrigger(t *testing.T) {
	db := store.MemStore()
	fail := errors.Wrap(errors.ErrHuman, "exploded after writing")
	// Without OnDeliver the savepoint passes through and the partial
	// write survives.
	h := ChainDecorators(
		NewSavepoint().OnCheck(),
	).WithHandler(writingHandler{key: []byte("k"), value: []byte("v"), err: fail})

	_, err := h.Deliver(context.Background(), db, &ledgertest.Tx{})
	assert.IsErr(t, errors.ErrHuman, err)

	got, err := db.Get([]byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v"), got)
}
