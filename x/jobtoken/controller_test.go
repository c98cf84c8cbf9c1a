package jobtoken

import (
	"testing"

	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
	"github.com/NevroHelios/skillsync-ledger/ledgertest"
	"github.com/NevroHelios/skillsync-ledger/ledgertest/assert"
	"github.com/NevroHelios/skillsync-ledger/store"
)

func TestIssueSequentialIDs(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	hr := ledgertest.NewCondition().Address()

	for want := int64(1); want <= 3; want++ {
		id, err := ctrl.Issue(db, hr, 1234, "eng-1", "Go Engineer", "SkillSync", "golang")
		assert.Nil(t, err)
		assert.Equal(t, want, id)
	}

	next, err := ctrl.NextTokenID(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(4), next)
}

func TestIssueMintsToCreator(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	hr := ledgertest.NewCondition().Address()

	id, err := ctrl.Issue(db, hr, 1234, "eng-1", "Go Engineer", "SkillSync", "golang, grpc")
	assert.Nil(t, err)

	token, err := ctrl.JobInfo(db, id)
	assert.Nil(t, err)
	assert.Equal(t, "eng-1", token.JobID)
	assert.Equal(t, "Go Engineer", token.Title)
	assert.Equal(t, "SkillSync", token.Company)
	assert.Equal(t, "golang, grpc", token.Requirements)
	assert.Equal(t, ledger.UnixTime(1234), token.CreatedAt)
	assert.Equal(t, hr, token.Creator)

	owner, err := ctrl.OwnerOf(db, id)
	assert.Nil(t, err)
	assert.Equal(t, hr, owner)

	count, err := ctrl.BalanceOf(db, hr)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), count)
}

func TestIssueInvalidCreator(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	_, err := ctrl.Issue(db, nil, 1234, "eng-1", "Go Engineer", "SkillSync", "")
	assert.IsErr(t, errors.ErrEmpty, err)

	_, err = ctrl.Issue(db, ledger.Address("too short"), 1234, "eng-1", "Go Engineer", "SkillSync", "")
	assert.IsErr(t, errors.ErrInput, err)

	// A failed issue must not burn an id.
	next, err := ctrl.NextTokenID(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), next)
}

func TestMove(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	hr := ledgertest.NewCondition().Address()
	dev := ledgertest.NewCondition().Address()

	id, err := ctrl.Issue(db, hr, 1234, "eng-1", "Go Engineer", "SkillSync", "golang")
	assert.Nil(t, err)

	assert.Nil(t, ctrl.Move(db, hr, id, dev))

	owner, err := ctrl.OwnerOf(db, id)
	assert.Nil(t, err)
	assert.Equal(t, dev, owner)

	// Posting details are immutable, only the owner changes.
	token, err := ctrl.JobInfo(db, id)
	assert.Nil(t, err)
	assert.Equal(t, "eng-1", token.JobID)
	assert.Equal(t, hr, token.Creator)
	assert.Equal(t, ledger.UnixTime(1234), token.CreatedAt)

	hrCount, err := ctrl.BalanceOf(db, hr)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), hrCount)
	devCount, err := ctrl.BalanceOf(db, dev)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), devCount)
}

func TestMoveUnauthorized(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	hr := ledgertest.NewCondition().Address()
	thief := ledgertest.NewCondition().Address()

	id, err := ctrl.Issue(db, hr, 1234, "eng-1", "Go Engineer", "SkillSync", "golang")
	assert.Nil(t, err)

	err = ctrl.Move(db, thief, id, thief)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// The failed transfer must not change any state.
	owner, err := ctrl.OwnerOf(db, id)
	assert.Nil(t, err)
	assert.Equal(t, hr, owner)
	count, err := ctrl.BalanceOf(db, hr)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMoveMissingToken(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	hr := ledgertest.NewCondition().Address()

	err := ctrl.Move(db, hr, 42, ledgertest.NewCondition().Address())
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestMoveEmptyRecipient(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	hr := ledgertest.NewCondition().Address()

	id, err := ctrl.Issue(db, hr, 1234, "eng-1", "Go Engineer", "SkillSync", "golang")
	assert.Nil(t, err)

	err = ctrl.Move(db, hr, id, nil)
	assert.IsErr(t, errors.ErrEmpty, err)

	owner, err := ctrl.OwnerOf(db, id)
	assert.Nil(t, err)
	assert.Equal(t, hr, owner)
}

func TestMoveToSelf(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	hr := ledgertest.NewCondition().Address()

	id, err := ctrl.Issue(db, hr, 1234, "eng-1", "Go Engineer", "SkillSync", "golang")
	assert.Nil(t, err)

	assert.Nil(t, ctrl.Move(db, hr, id, hr))

	owner, err := ctrl.OwnerOf(db, id)
	assert.Nil(t, err)
	assert.Equal(t, hr, owner)
	count, err := ctrl.BalanceOf(db, hr)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), count)
}

func TestBalanceOf(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	_, err := ctrl.BalanceOf(db, nil)
	assert.IsErr(t, errors.ErrEmpty, err)

	// An address that never held a token owns zero.
	count, err := ctrl.BalanceOf(db, ledgertest.NewCondition().Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(0), count)
}

func TestJobInfoMissing(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	_, err := ctrl.JobInfo(db, 1)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = ctrl.OwnerOf(db, 1)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestBalanceConservation(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	addrs := []ledger.Address{
		ledgertest.NewCondition().Address(),
		ledgertest.NewCondition().Address(),
		ledgertest.NewCondition().Address(),
	}

	var issued int64
	for i := 0; i < 5; i++ {
		_, err := ctrl.Issue(db, addrs[i%len(addrs)], 1234, "job", "title", "co", "")
		assert.Nil(t, err)
		issued++
	}
	assert.Nil(t, ctrl.Move(db, addrs[0], 1, addrs[2]))
	assert.Nil(t, ctrl.Move(db, addrs[1], 2, addrs[0]))

	var total int64
	for _, a := range addrs {
		count, err := ctrl.BalanceOf(db, a)
		assert.Nil(t, err)
		total += count
	}
	assert.Equal(t, issued, total)
}
