package ledger

import (
	"encoding/json"
	"testing"
)

func TestConditionParse(t *testing.T) {
	cond := NewCondition("sigs", "ed25519", []byte{1, 2, 3})
	if err := cond.Validate(); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	ext, typ, data, err := cond.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if ext != "sigs" || typ != "ed25519" {
		t.Fatalf("unexpected sections: %s/%s", ext, typ)
	}
	if len(data) != 3 {
		t.Fatalf("unexpected data: %v", data)
	}

	if err := Condition("no-separators").Validate(); err == nil {
		t.Fatal("want an error on a malformed condition")
	}
}

func TestConditionAddressStable(t *testing.T) {
	a := NewCondition("sigs", "ed25519", []byte("data")).Address()
	b := NewCondition("sigs", "ed25519", []byte("data")).Address()
	c := NewCondition("sigs", "ed25519", []byte("other")).Address()

	if len(a) != AddressLength {
		t.Fatalf("want %d bytes, got %d", AddressLength, len(a))
	}
	if !a.Equals(b) {
		t.Fatal("same condition must give the same address")
	}
	if a.Equals(c) {
		t.Fatal("different conditions must give different addresses")
	}
}

func TestAddressJSONRoundtrip(t *testing.T) {
	addr := NewCondition("test", "cond", []byte{7}).Address()

	raw, err := json.Marshal(addr)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	var got Address
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if !addr.Equals(got) {
		t.Fatalf("want %s, got %s", addr, got)
	}

	var empty Address
	if err := json.Unmarshal([]byte(`""`), &empty); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if empty != nil {
		t.Fatalf("want nil, got %v", empty)
	}
}

func TestAddressString(t *testing.T) {
	if got := Address(nil).String(); got != "(nil)" {
		t.Fatalf("unexpected nil representation: %q", got)
	}
}
