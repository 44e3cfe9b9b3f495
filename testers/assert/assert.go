package assert

import (
	"errors"
	"reflect"
	"testing"

	"github.com/susji/minic/testers"
)

func Equal(t *testing.T, expect, got interface{}) {
	if !reflect.DeepEqual(expect, got) {
		testers.DumpCaller(t)
		t.Errorf("wanted equal, but got different")
		t.Errorf("expected: %v [%T]", expect, expect)
		t.Errorf("got:      %v [%T]", got, got)
	}
}

func True(t *testing.T, exp bool) {
	if !exp {
		testers.DumpCaller(t)
		t.Error("expected true, got false")
	}
}

func False(t *testing.T, exp bool) {
	if exp {
		testers.DumpCaller(t)
		t.Error("expected false, got true")
	}
}

func Nil(t *testing.T, exp interface{}) {
	if exp != nil &&
		(reflect.ValueOf(exp).Kind() == reflect.Ptr &&
			!reflect.ValueOf(exp).IsNil()) {
		testers.DumpCaller(t)
		t.Errorf("wanted nil, got %v of type %T", exp, exp)
	}
}

func NotNil(t *testing.T, exp interface{}) {
	if exp == nil ||
		(reflect.ValueOf(exp).Kind() == reflect.Ptr &&
			reflect.ValueOf(exp).IsNil()) {
		testers.DumpCaller(t)
		t.Error("wanted not nil, got nil")
	}
}

func ErrorIs(t *testing.T, err, target error) {
	if !errors.Is(err, target) {
		testers.DumpCaller(t)
		t.Errorf("wanted error %v, got %v", target, err)
	}
}
