package domain

import "fmt"

// DataAccessError reports a dataset that is missing, unreadable or malformed.
type DataAccessError struct {
	Source string
	Err    error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access %s: %v", e.Source, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// InvalidFilterError reports a filter control value that could not be parsed.
type InvalidFilterError struct {
	Field string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid '%s' date format. Expected format: YYYY-MM-DD", e.Field)
}
