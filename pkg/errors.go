package coincidence

import "fmt"

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

// ErrCreateGroup represents an error when creating a group.
type ErrCreateGroup struct {
	GroupName string
	Err       error
}

func (e *ErrCreateGroup) Error() string {
	return fmt.Sprintf("error creating group %q: %v", e.GroupName, e.Err)
}

// ErrCreateTable represents an error when creating a table.
type ErrCreateTable struct {
	TableName string
	Err       error
}

func (e *ErrCreateTable) Error() string {
	return fmt.Sprintf("error creating table %q: %v", e.TableName, e.Err)
}

// ErrReadColumn represents an error when reading a column dataset.
type ErrReadColumn struct {
	Column string
	Err    error
}

func (e *ErrReadColumn) Error() string {
	return fmt.Sprintf("error reading column %q: %v", e.Column, e.Err)
}

// ErrColumnMismatch is the fatal ingestion error raised when the parallel
// input columns do not have the same number of entries.
type ErrColumnMismatch struct {
	Column string
	Got    int
	Want   int
}

func (e *ErrColumnMismatch) Error() string {
	return fmt.Sprintf("column %q has %d entries, expected %d", e.Column, e.Got, e.Want)
}

// ErrUnknownMode represents an unrecognized matching mode in the configuration.
type ErrUnknownMode struct {
	Mode string
}

func (e *ErrUnknownMode) Error() string {
	return fmt.Sprintf("unknown matching mode %q", e.Mode)
}
