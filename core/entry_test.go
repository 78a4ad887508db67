package core

import (
	"testing"
	"time"
)

func TestGetEntry_Fresh(t *testing.T) {
	e := GetEntry()
	defer PutEntry(e)

	if e.SysErr != 0 {
		t.Errorf("fresh entry SysErr = %d, want 0", e.SysErr)
	}
	if time.Since(e.Time) > time.Second {
		t.Errorf("fresh entry Time not set to call time: %v", e.Time)
	}
}

func TestPutEntry_ClearsState(t *testing.T) {
	e := GetEntry()
	e.Message = "stale message"
	e.SysErr = 5
	PutEntry(e)

	// The next entry from the pool must not expose the previous event.
	e2 := GetEntry()
	defer PutEntry(e2)
	if e2.Message != "" {
		t.Errorf("recycled entry Message = %q, want empty", e2.Message)
	}
	if e2.SysErr != 0 {
		t.Errorf("recycled entry SysErr = %d, want 0", e2.SysErr)
	}
}

func TestPutEntry_Nil(t *testing.T) {
	// Must not panic.
	PutEntry(nil)
}
