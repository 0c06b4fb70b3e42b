// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Every error returned by Load and Decode matches
// exactly one of them.
var (
	ErrFileAccess = errors.New("file access error")
	ErrParse      = errors.New("parse error")
	ErrKeyLookup  = errors.New("key lookup error")
)

// FileAccessError reports an export file that is missing or unreadable.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

func (e *FileAccessError) Is(target error) bool { return target == ErrFileAccess }

// ParseError reports content that is not a well-formed export: invalid
// JSON or YAML syntax, or a value of the wrong kind where an object or
// array is required.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// KeyLookupError reports a required key that is absent. Index is the
// position in risposte for entry keys and -1 for document keys.
type KeyLookupError struct {
	Key   string
	Index int
}

func (e *KeyLookupError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("missing key %q", e.Key)
	}
	return fmt.Sprintf("missing key %q in risposte[%d]", e.Key, e.Index)
}

func (e *KeyLookupError) Is(target error) bool { return target == ErrKeyLookup }
