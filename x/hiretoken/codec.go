package hiretoken

import (
	amino "github.com/tendermint/go-amino"

	ledger "github.com/NevroHelios/skillsync-ledger"
)

var cdc = amino.NewCodec()

// HireToken is the record of one hire. All fields are recorded verbatim from
// the mint request and never change.
type HireToken struct {
	Owner   ledger.Address
	JobID   string
	Company string
	Title   string
	URI     string
}

func (t *HireToken) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(t)
}

func (t *HireToken) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, t)
}

// MintHireTokenMsg mints a new hire token for the developer.
type MintHireTokenMsg struct {
	Developer ledger.Address
	JobID     string
	Company   string
	Title     string
	URI       string
}

func (m *MintHireTokenMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *MintHireTokenMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}
