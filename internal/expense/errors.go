package expense

import "fmt"

// UnknownHeaderError reports a CSV header label with no canonical mapping.
// Positional decoding of every data row depends on a complete header
// translation, so this aborts the run rather than skipping the column.
type UnknownHeaderError struct {
	Label string
}

func (e *UnknownHeaderError) Error() string {
	return fmt.Sprintf("no matching column for header %q", e.Label)
}

// DateFormatError reports a date field value that does not match the
// expected "Month-DD-YYYY" pattern.
type DateFormatError struct {
	Field Field
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date for %s: %q", e.Field, e.Value)
}

func (e *DateFormatError) Unwrap() error { return e.Err }

// AmountFormatError reports an amount value that is not numeric.
type AmountFormatError struct {
	Value string
	Err   error
}

func (e *AmountFormatError) Error() string {
	return fmt.Sprintf("invalid amount: %q", e.Value)
}

func (e *AmountFormatError) Unwrap() error { return e.Err }

// MalformedRowError reports a data row whose width does not match the
// header row of the same file.
type MalformedRowError struct {
	Want int
	Got  int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row has %d cells, header has %d", e.Got, e.Want)
}
