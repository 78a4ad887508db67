package syserr

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
)

func TestSetLastClear(t *testing.T) {
	Clear()

	Set(5)
	if got := Last(); got != 5 {
		t.Errorf("Last() = %d, want 5", got)
	}

	// Last must not clear the indicator.
	if got := Last(); got != 5 {
		t.Errorf("Last() after Last() = %d, want 5", got)
	}

	Clear()
	if got := Last(); got != 0 {
		t.Errorf("Last() after Clear() = %d, want 0", got)
	}
}

func TestRecord_WrappedErrno(t *testing.T) {
	Clear()

	err := fmt.Errorf("open config: %w", syscall.EACCES)
	Record(err)
	if got := Last(); got != Code(syscall.EACCES) {
		t.Errorf("Last() = %d, want %d", got, Code(syscall.EACCES))
	}
	Clear()
}

func TestRecord_NoErrno(t *testing.T) {
	Clear()
	Set(7)

	// An error without an OS code must leave the indicator untouched.
	Record(errors.New("plain error"))
	if got := Last(); got != 7 {
		t.Errorf("Last() = %d, want 7", got)
	}
	Clear()
}

func TestMessage(t *testing.T) {
	if got := Message(0); got != "" {
		t.Errorf("Message(0) = %q, want empty", got)
	}

	want := syscall.Errno(syscall.EACCES).Error()
	if got := Message(Code(syscall.EACCES)); got != want {
		t.Errorf("Message(EACCES) = %q, want %q", got, want)
	}
}
