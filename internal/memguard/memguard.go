// Package memguard implements the sensitive-memory hygiene contract of
// spec.md §4.8: every buffer that ever held secret material (secret bytes,
// polynomial coefficients, decoded share Y values, Lagrange weight tables)
// must be overwritten before its owner releases it, and a process-wide,
// mutex-guarded registry exists so a final teardown can sweep anything a
// caller forgot to release. It is grounded on the teacher's
// internal/sigilcrypto and internal/crypto secure-memory wrappers, widened
// from a single SecureBytes type into the registry spec.md requires.
package memguard

import (
	"runtime"
	"sync"
)

// Handle identifies a buffer registered with the package registry.
type Handle uint64

// Wipe overwrites b with zero bytes. Safe to call on a nil or empty slice.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

type entry struct {
	buf    []byte
	locked bool
}

type registry struct {
	mu      sync.Mutex
	next    Handle
	entries map[Handle]*entry
}

var global = &registry{entries: make(map[Handle]*entry)}

// Register places buf under the registry's watch and attempts to mlock it.
// Locking failures are tolerated: the registry's guarantee is wiping, not
// keeping the page out of swap.
func Register(buf []byte) Handle {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.next++
	h := global.next
	global.entries[h] = &entry{buf: buf, locked: mlock(buf)}
	return h
}

// Release wipes the buffer registered under h and removes it from the
// registry. Double-release is a no-op, matching spec.md's "balanced with
// releases" contract.
func Release(h Handle) {
	global.mu.Lock()
	defer global.mu.Unlock()

	e, ok := global.entries[h]
	if !ok {
		return
	}
	Wipe(e.buf)
	if e.locked {
		munlock(e.buf)
	}
	delete(global.entries, h)
}

// Sweep wipes every buffer still registered (normally none, if callers
// balanced Register/Release correctly) and requests a collector pass. It
// is the teardown-time backstop spec.md §4.8 describes, not the primary
// hygiene mechanism.
func Sweep() {
	global.mu.Lock()
	for h, e := range global.entries {
		Wipe(e.buf)
		if e.locked {
			munlock(e.buf)
		}
		delete(global.entries, h)
	}
	global.mu.Unlock()

	runtime.GC()
}

// Len reports how many buffers are currently registered. Exposed for tests
// that assert balanced Register/Release pairs.
func Len() int {
	global.mu.Lock()
	defer global.mu.Unlock()
	return len(global.entries)
}
