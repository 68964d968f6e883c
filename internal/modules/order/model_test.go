package order

import (
	"strings"
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusPaid, true},
		{StatusConfirmed, StatusPaid, true},
		{StatusConfirmed, StatusFailed, true},
		{StatusPaid, StatusConfirmed, false},
		{StatusFailed, StatusPaid, false},
		{StatusConfirmed, StatusPending, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusPaid, StatusFailed} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("confirmed").Valid() {
		t.Error("statuses are upper-case")
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if !strings.HasPrefix(a, "order_") {
		t.Errorf("unexpected id %q", a)
	}
	if a == b {
		t.Error("ids must be unique")
	}
}
