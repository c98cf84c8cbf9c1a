package hiretoken

import (
	"context"
	"testing"

	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/ledgertest"
	"github.com/NevroHelios/skillsync-ledger/ledgertest/assert"
	"github.com/NevroHelios/skillsync-ledger/orm"
	"github.com/NevroHelios/skillsync-ledger/store"
)

func TestMintHandler(t *testing.T) {
	dev := ledgertest.NewCondition()

	cases := map[string]struct {
		signer ledger.Condition
		msg    *MintHireTokenMsg
	}{
		"happy path": {
			signer: ledgertest.NewCondition(),
			msg: &MintHireTokenMsg{
				Developer: dev.Address(),
				JobID:     "eng-1",
				Company:   "SkillSync",
				Title:     "Go Engineer",
				URI:       "ipfs://abc",
			},
		},
		"no signer": {
			msg: &MintHireTokenMsg{Developer: dev.Address()},
		},
		"empty message": {
			signer: ledgertest.NewCondition(),
			msg:    &MintHireTokenMsg{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			auth := &ledgertest.Auth{Signer: tc.signer}
			h := MintHandler{auth: auth, ctrl: NewController()}
			tx := &ledgertest.Tx{Msg: tc.msg}
			ctx := context.Background()

			_, err := h.Check(ctx, db, tx)
			assert.Nil(t, err)

			res, err := h.Deliver(ctx, db, tx)
			assert.Nil(t, err)
			assert.Equal(t, int64(0), orm.DecodeSequence(res.Data))

			ctrl := NewController()
			token, err := ctrl.TokenInfo(db, 0)
			assert.Nil(t, err)
			assert.Equal(t, tc.msg.Developer, token.Owner)
			assert.Equal(t, tc.msg.URI, token.URI)

			supply, err := ctrl.TotalSupply(db)
			assert.Nil(t, err)
			assert.Equal(t, int64(1), supply)
		})
	}
}
