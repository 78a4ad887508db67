package core

import (
	"sync"
	"time"
)

// Entry represents a single log event
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	// SysErr is the OS error code captured at the call site.
	// Zero means no error was pending.
	SysErr uint32
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.SysErr = 0
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.SysErr = 0
	entryPool.Put(e)
}
