package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrDecode marks archives that are not valid containers and entries whose
	// bytes cannot be decoded as text.
	ErrDecode = errors.New("decode error")
	// ErrParse marks interchange data that is not well-formed.
	ErrParse = errors.New("parse error")
	// ErrBusy is returned when a load is requested while another one is running.
	ErrBusy = errors.New("another load is already in progress")
	// ErrNotImplemented is returned by the tag/edit/delete hooks.
	ErrNotImplemented = errors.New("not implemented")
	// ErrUnknownFormat is returned for archive or interchange formats with no adapter.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrNoSink is returned by Save when no delivery sink was configured.
	ErrNoSink = errors.New("no sink configured")
)

// DecodeError reports a failure to decode an archive or one of its entries.
// Path is empty when the archive itself could not be opened.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode archive: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports ErrDecode as a match so callers can use errors.Is.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// ParseError reports malformed interchange data.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("parse: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrParse as a match so callers can use errors.Is.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
