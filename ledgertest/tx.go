package ledgertest

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
)

// Tx is a mock of the ledger.Tx interface.
type Tx struct {
	// Msg is the message carried by this transaction.
	Msg ledger.Msg

	// Err, if set, is returned by every method call.
	Err error
}

var _ ledger.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (ledger.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrState, "no message")
	}
	return tx.Msg.Marshal()
}

func (tx *Tx) Unmarshal(raw []byte) error {
	if tx.Err != nil {
		return tx.Err
	}
	if tx.Msg == nil {
		return errors.Wrap(errors.ErrState, "no message")
	}
	return tx.Msg.Unmarshal(raw)
}

// Msg is a mock of the ledger.Msg interface.
type Msg struct {
	// RoutePath is returned by the Path method.
	RoutePath string

	// Serialized represents the serialized form of this message.
	Serialized []byte

	// Err, if set, is returned by Marshal, Unmarshal and Validate.
	Err error
}

var _ ledger.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Marshal() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Serialized, nil
}

func (m *Msg) Unmarshal(raw []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Serialized = raw
	return nil
}

func (m *Msg) Validate() error {
	return m.Err
}
