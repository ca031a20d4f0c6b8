// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// ErrUnknownSource indicates a source identifier outside the registered
	// roster. This is a configuration defect and aborts the run.
	ErrUnknownSource = errors.New("unknown source")

	// ErrNoRecords indicates an operation was asked to run over an empty
	// canonical dataset.
	ErrNoRecords = errors.New("no records")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MalformedRecordError marks a raw row that lacks the minimum
// identification triplet (name, designated price field, url) required to be
// a listing at all. Such rows are dropped and counted; the error never
// escalates past the record.
type MalformedRecordError struct {
	Source  string
	Missing []string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record from %s: missing %s",
		e.Source, strings.Join(e.Missing, ", "))
}

// IsMalformedRecord reports whether err is a per-record drop rather than a
// structural failure.
func IsMalformedRecord(err error) bool {
	var mr *MalformedRecordError
	return errors.As(err, &mr)
}
