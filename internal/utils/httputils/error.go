package httputils

import "net/http"

type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// BadRequest wraps a validation message as a 400 error.
func BadRequest(message string) *HTTPError {
	return &HTTPError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func HandleError(w http.ResponseWriter, err error) {
	if httpErr, ok := err.(*HTTPError); ok {
		JSONError(w, httpErr.Code, httpErr.Message)
	} else {
		JSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
