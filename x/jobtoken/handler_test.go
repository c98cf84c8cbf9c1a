package jobtoken

import (
	"context"
	"testing"
	"time"

	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
	"github.com/NevroHelios/skillsync-ledger/ledgertest"
	"github.com/NevroHelios/skillsync-ledger/ledgertest/assert"
	"github.com/NevroHelios/skillsync-ledger/orm"
	"github.com/NevroHelios/skillsync-ledger/store"
)

var blockNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func testCtx() ledger.Context {
	return ledger.WithBlockTime(context.Background(), blockNow)
}

func TestIssueHandler(t *testing.T) {
	hr := ledgertest.NewCondition()
	dev := ledgertest.NewCondition()

	cases := map[string]struct {
		signers []ledger.Condition
		msg     ledger.Msg
		wantErr *errors.Error
		wantID  int64
	}{
		"happy path": {
			signers: []ledger.Condition{hr},
			msg:     &IssueJobTokenMsg{JobID: "eng-1", Title: "Go Engineer", Company: "SkillSync", Requirements: "golang"},
			wantID:  1,
		},
		"empty details are allowed": {
			signers: []ledger.Condition{hr},
			msg:     &IssueJobTokenMsg{},
			wantID:  1,
		},
		"first signer becomes the owner": {
			signers: []ledger.Condition{dev, hr},
			msg:     &IssueJobTokenMsg{JobID: "eng-2"},
			wantID:  1,
		},
		"no signer": {
			msg:     &IssueJobTokenMsg{JobID: "eng-1"},
			wantErr: errors.ErrEmpty,
		},
		"wrong message type": {
			signers: []ledger.Condition{hr},
			msg:     &TransferJobTokenMsg{TokenID: 1, Recipient: dev.Address()},
			wantErr: errors.ErrType,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			auth := &ledgertest.Auth{Signers: tc.signers}
			h := IssueHandler{auth: auth, ctrl: NewController()}
			tx := &ledgertest.Tx{Msg: tc.msg}

			_, err := h.Check(testCtx(), db, tx)
			assert.IsErr(t, asErr(tc.wantErr), err)

			res, err := h.Deliver(testCtx(), db, tx)
			assert.IsErr(t, asErr(tc.wantErr), err)
			if tc.wantErr != nil {
				return
			}

			assert.Equal(t, tc.wantID, orm.DecodeSequence(res.Data))

			ctrl := NewController()
			token, err := ctrl.JobInfo(db, tc.wantID)
			assert.Nil(t, err)
			assert.Equal(t, tc.signers[0].Address(), token.Owner)
			assert.Equal(t, ledger.AsUnixTime(blockNow), token.CreatedAt)
		})
	}
}

func TestTransferHandler(t *testing.T) {
	hr := ledgertest.NewCondition()
	dev := ledgertest.NewCondition()
	other := ledgertest.NewCondition()

	cases := map[string]struct {
		signer    ledger.Condition
		msg       ledger.Msg
		wantErr   *errors.Error
		wantOwner ledger.Address
	}{
		"owner can transfer": {
			signer:    hr,
			msg:       &TransferJobTokenMsg{TokenID: 1, Recipient: dev.Address()},
			wantOwner: dev.Address(),
		},
		"non owner cannot transfer": {
			signer:  other,
			msg:     &TransferJobTokenMsg{TokenID: 1, Recipient: other.Address()},
			wantErr: errors.ErrUnauthorized,
		},
		"missing token": {
			signer:  hr,
			msg:     &TransferJobTokenMsg{TokenID: 42, Recipient: dev.Address()},
			wantErr: errors.ErrNotFound,
		},
		"empty recipient": {
			signer:  hr,
			msg:     &TransferJobTokenMsg{TokenID: 1},
			wantErr: errors.ErrEmpty,
		},
		"invalid token id": {
			signer:  hr,
			msg:     &TransferJobTokenMsg{TokenID: 0, Recipient: dev.Address()},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			_, err := ctrl.Issue(db, hr.Address(), 1234, "eng-1", "Go Engineer", "SkillSync", "golang")
			assert.Nil(t, err)

			auth := &ledgertest.Auth{Signer: tc.signer}
			h := TransferHandler{auth: auth, ctrl: NewController()}
			tx := &ledgertest.Tx{Msg: tc.msg}

			_, err = h.Deliver(testCtx(), db, tx)
			assert.IsErr(t, asErr(tc.wantErr), err)

			wantOwner := tc.wantOwner
			if wantOwner == nil {
				// Any failure must leave the token with the issuer.
				wantOwner = hr.Address()
			}
			owner, err := ctrl.OwnerOf(db, 1)
			assert.Nil(t, err)
			assert.Equal(t, wantOwner, owner)
		})
	}
}

// TestHiringFlow walks a posting through its life: the recruiter issues it,
// hands it to the first developer, who passes it on to a second one.
func TestHiringFlow(t *testing.T) {
	db := store.MemStore()
	recruiter := ledgertest.NewCondition()
	dev1 := ledgertest.NewCondition()
	dev2 := ledgertest.NewCondition()

	issue := IssueHandler{auth: &ledgertest.Auth{Signer: recruiter}, ctrl: NewController()}
	res, err := issue.Deliver(testCtx(), db, &ledgertest.Tx{
		Msg: &IssueJobTokenMsg{JobID: "eng-9", Title: "Backend Engineer", Company: "SkillSync", Requirements: "golang, postgres"},
	})
	assert.Nil(t, err)
	id := orm.DecodeSequence(res.Data)
	assert.Equal(t, int64(1), id)

	transfer := func(from ledger.Condition, to ledger.Address) error {
		h := TransferHandler{auth: &ledgertest.Auth{Signer: from}, ctrl: NewController()}
		_, err := h.Deliver(testCtx(), db, &ledgertest.Tx{
			Msg: &TransferJobTokenMsg{TokenID: id, Recipient: to},
		})
		return err
	}

	assert.Nil(t, transfer(recruiter, dev1.Address()))
	// The recruiter no longer holds the token and cannot move it again.
	assert.IsErr(t, errors.ErrUnauthorized, transfer(recruiter, dev2.Address()))
	assert.Nil(t, transfer(dev1, dev2.Address()))

	ctrl := NewController()
	owner, err := ctrl.OwnerOf(db, id)
	assert.Nil(t, err)
	assert.Equal(t, dev2.Address(), owner)

	for _, b := range []struct {
		addr ledger.Address
		want int64
	}{
		{recruiter.Address(), 0},
		{dev1.Address(), 0},
		{dev2.Address(), 1},
	} {
		count, err := ctrl.BalanceOf(db, b.addr)
		assert.Nil(t, err)
		assert.Equal(t, b.want, count)
	}

	token, err := ctrl.JobInfo(db, id)
	assert.Nil(t, err)
	assert.Equal(t, recruiter.Address(), token.Creator)
	assert.Equal(t, "eng-9", token.JobID)
}

func asErr(e *errors.Error) error {
	if e == nil {
		return nil
	}
	return e
}
