package ledger

import (
	"reflect"

	"github.com/NevroHelios/skillsync-ledger/errors"
)

// Msg is a request for the ledger to take an action (make a state
// transition). It is just the request, and must be authorized by the
// Handlers. All authentication information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Validate makes sure basic rules are enforced upon the input data.
	// It does not require access to any state, only the message content.
	Validate() error

	// Path returns the message route. This is used by the Router to
	// locate the proper Handler. Msg should be created alongside the
	// Handler that corresponds to it.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string
}

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as unmarshaling almost always requires
// a pointer, and functions that only need to marshal bytes can use the
// Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the chain. It includes the
// actual message, along with information needed to authenticate the sender
// (cryptographic signatures), and anything else needed to pass through
// middleware.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// TxDecoder can parse bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message, or (missing) if no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message from the transaction, ensures it is valid and
// loads it into the destination. Destination must be a non-nil pointer of the
// same type as the transported message.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dstVal := reflect.ValueOf(destination)
	if dstVal.Kind() != reflect.Ptr || dstVal.IsNil() {
		return errors.Wrapf(errors.ErrType, "%T is not a valid message destination", destination)
	}
	msgVal := reflect.ValueOf(msg)
	if !msgVal.Type().AssignableTo(dstVal.Type()) {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dstVal.Elem().Set(msgVal.Elem())
	return nil
}
