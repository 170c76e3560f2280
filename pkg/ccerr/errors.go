// Package ccerr provides the typed error taxonomy shared by every
// classiccrypto component. It replaces the teacher's single generic
// CryptoException with one error kind per failure mode so callers can
// branch on errors.Is against an *Error of the wanted Kind (see Error.Is).
package ccerr

import "fmt"

// Kind identifies the category of a cryptographic error.
type Kind int

const (
	// InvalidKeySize means the supplied key length is wrong for the cipher.
	InvalidKeySize Kind = iota
	// InvalidIV means an IV is missing for a mode that requires one, or has the wrong length.
	InvalidIV
	// InvalidBlockSize means a block argument's length does not equal the cipher's block size.
	InvalidBlockSize
	// UnsupportedMode means the configured mode variant is not implemented.
	UnsupportedMode
	// UnsupportedPadding means the configured padding variant is not implemented.
	UnsupportedPadding
	// LengthError means a ciphertext length is not a multiple of the block size for a block mode.
	LengthError
	// KeySizeTooLarge means a derived key length exceeds the underlying hash output.
	KeySizeTooLarge
	// StateError means the cipher was used before its key schedule was set.
	StateError
)

func (k Kind) String() string {
	switch k {
	case InvalidKeySize:
		return "InvalidKeySize"
	case InvalidIV:
		return "InvalidIV"
	case InvalidBlockSize:
		return "InvalidBlockSize"
	case UnsupportedMode:
		return "UnsupportedMode"
	case UnsupportedPadding:
		return "UnsupportedPadding"
	case LengthError:
		return "LengthError"
	case KeySizeTooLarge:
		return "KeySizeTooLarge"
	case StateError:
		return "StateError"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by classiccrypto packages.
// Reference: teacher's pkg/exceptions.CryptoException, extended with a Kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is a *Error with the same Kind, enabling
// errors.Is(err, ccerr.New(ccerr.InvalidKeySize, "")) style checks.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
