package keyutil

import "errors"

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrOutOfRange     = errors.New("out of range")
)

// Messages carried by KeyError.
const (
	MsgInvalidBuffer  = "invalid private key buffer"
	MsgInvalidKeyPair = "invalid key pair"
	MsgOutOfRange     = "private key out of range"
	MsgExceedsOrder   = "Private key must be less than the curve order"
)

// KeyError is a terminal private key encoding error.
// Kind is ErrMalformedInput or ErrOutOfRange; Msg is the text Error returns.
type KeyError struct {
	Kind error
	Msg  string
}

func (e *KeyError) Error() string {
	return e.Msg
}

func (e *KeyError) Unwrap() error {
	return e.Kind
}

func malformed(msg string) *KeyError {
	return &KeyError{Kind: ErrMalformedInput, Msg: msg}
}

func outOfRange(msg string) *KeyError {
	return &KeyError{Kind: ErrOutOfRange, Msg: msg}
}
