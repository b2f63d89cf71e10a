package httperr

import "errors"

// BusinessError is a client-detected failure: validation or a business rule.
// It never reaches the store.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrNotFound(message string) error {
	return BusinessError{Code: CodeNotFound, Message: message}
}

func ErrValidation(message string) error {
	return BusinessError{Code: CodeValidation, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// StoreError is a failure reported by the record store. Message is safe to
// show to staff.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func ErrStore(message string, err error) error {
	return &StoreError{Message: message, Err: err}
}

// StoreMessage returns the store's human-readable message, or fallback when
// err carries none.
func StoreMessage(err error, fallback string) string {
	var se *StoreError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
