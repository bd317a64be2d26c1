package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a resolution failure kind. Codes are part of the
// public error contract and must stay stable.
type ErrorCode string

const (
	CodeInvalidDateFormat  ErrorCode = "INVALID_DATE_FORMAT"
	CodeUnsupportedDiocese ErrorCode = "UNSUPPORTED_DIOCESE"
	CodeNoDataForDate      ErrorCode = "NO_DATA_FOR_DATE"
	CodeEngineFailure      ErrorCode = "ENGINE_FAILURE"
)

// Error is a resolution failure with a stable code and a human-readable
// message. EngineFailure errors additionally wrap the underlying engine
// fault so operators can see the cause; the HTTP boundary decides how
// much of that to expose.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// CodeOf extracts the error code from err, or "" if err is not a
// resolution error.
func CodeOf(err error) ErrorCode {
	var re *Error
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}

func errInvalidDate(input string) *Error {
	return &Error{
		Code:    CodeInvalidDateFormat,
		Message: fmt.Sprintf("invalid date %q: use YYYY-MM-DD", input),
	}
}

func errUnsupportedDiocese(code string) *Error {
	return &Error{
		Code: CodeUnsupportedDiocese,
		Message: fmt.Sprintf("unsupported diocese %q: supported values are %s",
			code, strings.Join(Dioceses(), ", ")),
	}
}

func errNoData(date, diocese string) *Error {
	return &Error{
		Code:    CodeNoDataForDate,
		Message: fmt.Sprintf("no liturgical data for %s in calendar %q", date, diocese),
	}
}

func errEngineFailure(date, diocese string, cause error) *Error {
	return &Error{
		Code:    CodeEngineFailure,
		Message: fmt.Sprintf("no liturgical data for %s in calendar %q", date, diocese),
		Err:     cause,
	}
}
