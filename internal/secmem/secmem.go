// Package secmem locks sensitive byte slices — a DhParticipant's
// private exponent, a CipherContext's raw key bytes — into
// physical memory so they are never written to a swap device.
// Reference: the defensive key-handling impulse behind
// Redeaux-Corporation-eamsa512's hsm-integration.go/key-lifecycle.go
// and absfs-encryptfs's key material handling, narrowed to the one
// concrete primitive both gesture at: golang.org/x/sys/unix.Mlock.
package secmem

import "errors"

// errUnsupported is returned by mlock on non-unix builds.
var errUnsupported = errors.New("secmem: mlock unsupported on this platform")

// Locked wraps a byte slice that has been (best-effort) mlock'd. The
// zero value is not usable; construct with Lock.
type Locked struct {
	buf    []byte
	locked bool
}

// Lock copies data into a freshly allocated, page-locked buffer and
// returns a handle to it. On platforms or under permissions where
// mlock is unavailable, the copy still happens but Locked.locked is
// false — callers get working memory either way, just without the
// swap guarantee.
func Lock(data []byte) *Locked {
	buf := make([]byte, len(data))
	copy(buf, data)

	l := &Locked{buf: buf}
	l.locked = mlock(buf) == nil
	return l
}

// Bytes returns the locked buffer. The returned slice aliases Locked's
// internal storage; callers must not retain it past Release.
func (l *Locked) Bytes() []byte {
	return l.buf
}

// Locked reports whether the underlying mlock call succeeded.
func (l *Locked) Locked() bool {
	return l.locked
}

// Release zeroes the buffer and unlocks it.
func (l *Locked) Release() {
	for i := range l.buf {
		l.buf[i] = 0
	}
	if l.locked {
		munlock(l.buf)
		l.locked = false
	}
}
