// Package sigerr defines the failure conditions reported by the hashing and
// signature recovery packages.
package sigerr

import (
	"errors"
	"fmt"
)

// Kind identifies a class of failure. Kinds are stable and are used as API
// error codes by the HTTP layer.
type Kind string

const (
	KindInvalidHexEncoding       Kind = "INVALID_HEX_ENCODING"
	KindInvalidSignatureFormat   Kind = "INVALID_SIGNATURE_FORMAT"
	KindInvalidPublicKeyEncoding Kind = "INVALID_PUBLIC_KEY_ENCODING"
	KindUnknownType              Kind = "UNKNOWN_TYPE"
	KindMissingFieldValue        Kind = "MISSING_FIELD_VALUE"
	KindNoPrimaryType            Kind = "NO_PRIMARY_TYPE"
	KindInvalidFieldValue        Kind = "INVALID_FIELD_VALUE"
	KindRecoveryFailed           Kind = "RECOVERY_FAILED"
	KindInvalidAddress           Kind = "INVALID_ADDRESS"
	KindSignerMismatch           Kind = "SIGNER_MISMATCH"
)

var kindText = map[Kind]string{
	KindInvalidHexEncoding:       "invalid hex encoding",
	KindInvalidSignatureFormat:   "invalid signature format",
	KindInvalidPublicKeyEncoding: "invalid public key format",
	KindUnknownType:              "unknown type",
	KindMissingFieldValue:        "missing field value",
	KindNoPrimaryType:            "no primary type found",
	KindInvalidFieldValue:        "invalid field value",
	KindRecoveryFailed:           "public key recovery failed",
	KindInvalidAddress:           "invalid ethereum address",
	KindSignerMismatch:           "recovered address does not match",
}

// String returns the human-readable description of the kind.
func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return string(k)
}

// Error is a classified failure with an optional detail message and cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so the sentinels
// below can be matched with errors.Is regardless of message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidHexEncoding       = &Error{Kind: KindInvalidHexEncoding}
	ErrInvalidSignatureFormat   = &Error{Kind: KindInvalidSignatureFormat}
	ErrInvalidPublicKeyEncoding = &Error{Kind: KindInvalidPublicKeyEncoding}
	ErrUnknownType              = &Error{Kind: KindUnknownType}
	ErrMissingFieldValue        = &Error{Kind: KindMissingFieldValue}
	ErrNoPrimaryType            = &Error{Kind: KindNoPrimaryType}
	ErrInvalidFieldValue        = &Error{Kind: KindInvalidFieldValue}
	ErrRecoveryFailed           = &Error{Kind: KindRecoveryFailed}
	ErrInvalidAddress           = &Error{Kind: KindInvalidAddress}
	ErrSignerMismatch           = &Error{Kind: KindSignerMismatch}
)

// New creates an error of the given kind with a formatted detail message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an error of the given kind that carries err as its cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
