package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies a pipeline error condition.
type ErrorType string

const (
	ErrTypeConfig              ErrorType = "CONFIG"
	ErrTypeMalformedFilename   ErrorType = "MALFORMED_FILENAME"
	ErrTypeYearOutOfRange      ErrorType = "YEAR_OUT_OF_RANGE"
	ErrTypeInsufficientColumns ErrorType = "INSUFFICIENT_COLUMNS"
	ErrTypeUnreadableFile      ErrorType = "UNREADABLE_FILE"
	ErrTypeNoFiles             ErrorType = "NO_FILES_FOR_STATION_YEAR"
	ErrTypeDuplicateFile       ErrorType = "DUPLICATE_FILE_FOR_YEAR"
	ErrTypeStorage             ErrorType = "STORAGE"
)

// AppError is the application-wide error carrying a condition code, an
// operator-facing message, the wrapped cause and optional key/value context.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err (or anything it wraps) is an AppError of the
// given type. Callers use this to tell hard read failures apart from
// skippable per-file conditions.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper constructors for the pipeline condition codes.

// NewConfigError creates a configuration error; these abort the run.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewMalformedFilenameError reports a filename without a usable two-digit
// year suffix.
func NewMalformedFilenameError(filename string) *AppError {
	return NewAppError(ErrTypeMalformedFilename,
		fmt.Sprintf("no two-digit year suffix in %q", filename), nil).
		WithContext("filename", filename)
}

// NewYearOutOfRangeError reports a resolved year outside the configured bounds.
func NewYearOutOfRangeError(filename string, year int) *AppError {
	return NewAppError(ErrTypeYearOutOfRange,
		fmt.Sprintf("year %d from %q outside configured range", year, filename), nil).
		WithContext("filename", filename).
		WithContext("year", year)
}

// NewInsufficientColumnsError reports a station file row with fewer than two
// columns; this fails the whole file read.
func NewInsufficientColumnsError(path string, row int) *AppError {
	return NewAppError(ErrTypeInsufficientColumns,
		fmt.Sprintf("row %d of %s has fewer than two columns", row, path), nil).
		WithContext("path", path).
		WithContext("row", row)
}

// NewUnreadableFileError reports an I/O failure while reading a station file.
func NewUnreadableFileError(path string, cause error) *AppError {
	return NewAppError(ErrTypeUnreadableFile,
		fmt.Sprintf("cannot read station file %s", path), cause).
		WithContext("path", path)
}

// NewNoFilesError reports a station with no usable files for a target year.
func NewNoFilesError(station string, year int) *AppError {
	return NewAppError(ErrTypeNoFiles,
		fmt.Sprintf("no files for station %s matching year %d", station, year), nil).
		WithContext("station", station).
		WithContext("year", year)
}

// NewStorageError creates an output-writing error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}
