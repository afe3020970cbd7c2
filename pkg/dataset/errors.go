package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchema is the sentinel matched by every *SchemaError.
	ErrSchema = errors.New("dataset schema mismatch")

	ErrNilSource        = errors.New("dataset source is nil")
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrFailedToReadData = errors.New("failed to read dataset")
	ErrMalformedDataset = errors.New("malformed dataset")
	ErrNotRecordStruct  = errors.New("record type must be a struct")
)

// SchemaError reports a record whose field set differs from the required one.
type SchemaError struct {
	Dataset string
	Index   int
	Record  string // value of the record's "name" key when present
	Missing []string
	Extra   []string
	Reason  string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dataset %q: record %d", e.Dataset, e.Index)
	if e.Record != "" {
		fmt.Fprintf(&b, " (%s)", e.Record)
	}
	if e.Reason != "" {
		b.WriteString(": " + e.Reason)
	}
	if len(e.Missing) > 0 {
		b.WriteString(": missing fields: " + strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		b.WriteString(": unexpected fields: " + strings.Join(e.Extra, ", "))
	}
	return b.String()
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}
