// Package assert provides a small set of assertion helpers for tests that
// do not need the full weight of an assertion library.
package assert

import (
	"reflect"
	"testing"
)

// Nil fails the test when the value is not nil.
func Nil(t testing.TB, value interface{}) {
	t.Helper()
	if !isNil(value) {
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// Equal fails the test when the two values are not equal.
func Equal(t testing.TB, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal\nwant %+v\n got %+v", want, got)
	}
}

// Panics runs the function and fails the test when it does not panic.
func Panics(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	fn()
}

// IsErr fails the test when the error does not belong to the wanted error
// class. A nil want matches only a nil err.
func IsErr(t testing.TB, want, err error) {
	t.Helper()
	if want == nil {
		if err != nil {
			t.Fatalf("want no error, got %+v", err)
		}
		return
	}
	type isser interface {
		Is(error) bool
	}
	if w, ok := want.(isser); ok {
		if !w.Is(err) {
			t.Fatalf("want %q error, got %+v", want, err)
		}
		return
	}
	if want != err {
		t.Fatalf("want %q error, got %+v", want, err)
	}
}
