//go:build !unix

package secmem

func mlock(b []byte) error {
	return errUnsupported
}

func munlock(b []byte) {}
