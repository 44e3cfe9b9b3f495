package require

import (
	"errors"
	"reflect"
	"testing"

	"github.com/susji/minic/testers"
)

func Equal(t *testing.T, expect, got interface{}) {
	if !reflect.DeepEqual(expect, got) {
		testers.DumpCaller(t)
		t.Fatalf("wanted equal: expected %v [%T], got %v [%T]",
			expect, expect, got, got)
	}
}

func True(t *testing.T, exp bool) {
	if !exp {
		testers.DumpCaller(t)
		t.Fatal("expected true, got false")
	}
}

func Nil(t *testing.T, exp interface{}) {
	if exp != nil &&
		(reflect.ValueOf(exp).Kind() == reflect.Ptr &&
			!reflect.ValueOf(exp).IsNil()) {
		testers.DumpCaller(t)
		t.Fatalf("wanted nil, got %v of type %T", exp, exp)
	}
}

func NotNil(t *testing.T, exp interface{}) {
	if exp == nil ||
		(reflect.ValueOf(exp).Kind() == reflect.Ptr &&
			reflect.ValueOf(exp).IsNil()) {
		testers.DumpCaller(t)
		t.Fatal("wanted not nil, got nil")
	}
}

func ErrorIs(t *testing.T, err, target error) {
	if !errors.Is(err, target) {
		testers.DumpCaller(t)
		t.Fatalf("wanted error %v, got %v", target, err)
	}
}
