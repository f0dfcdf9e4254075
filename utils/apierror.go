package utils

// ApiError carries an explicit HTTP status through the handler chain so the
// error middleware can translate it without guessing.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(status int, message string) *ApiError {
	return &ApiError{Status: status, Message: message}
}
