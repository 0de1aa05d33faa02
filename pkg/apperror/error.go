package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails creates an error whose details are exposed to the caller.
func WithDetails(code int, message string, err error) *AppError {
	appErr := New(code, message, err)
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func MethodNotAllowed() *AppError {
	return New(http.StatusMethodNotAllowed, "Method not allowed", nil)
}

func BadGateway(message string, err error) *AppError {
	return WithDetails(http.StatusBadGateway, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
