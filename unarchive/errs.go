package unarchive

import (
	"errors"
	"fmt"
)

var (
	ErrWrongValueType        = errors.New("wrong value type")
	ErrMissingHeaderKey      = errors.New("missing header key")
	ErrUnsupportedArchiver   = errors.New("unsupported archiver")
	ErrUnsupportedVersion    = errors.New("unsupported archiver version")
	ErrDanglingReference     = errors.New("invalid object reference")
	ErrMalformedObject       = errors.New("invalid object encoding")
	ErrInvalidClassReference = errors.New("invalid class reference")
	ErrExpectedReference     = errors.New("expected uid value")
	ErrCyclicReference       = errors.New("cyclic object reference")
)

func wrongType(key, want string) error {
	return fmt.Errorf("%w: expected %q to be a type of %q", ErrWrongValueType, key, want)
}

func malformed(ref uint64) error {
	return fmt.Errorf("%w (%d): the data may be corrupt", ErrMalformedObject, ref)
}

func dangling(ref uint64) error {
	return fmt.Errorf("%w (%d): the data may be corrupt", ErrDanglingReference, ref)
}
