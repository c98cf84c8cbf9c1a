package hiretoken

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
)

const pathMintHireTokenMsg = "hiretoken/mint"

var _ ledger.Msg = (*MintHireTokenMsg)(nil)

// Path returns the routing path for this message.
func (*MintHireTokenMsg) Path() string {
	return pathMintHireTokenMsg
}

// Validate accepts any message content. Minting takes no preconditions, an
// empty developer address included.
func (m *MintHireTokenMsg) Validate() error {
	return nil
}
