package http

// Response is the uniform envelope every endpoint returns with HTTP status
// 200; callers inspect Success instead of the status code. All three keys
// are always present on the wire, with the unused one of data/error null.
type Response struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

// Success wraps a payload in a successful envelope.
func Success(data any) Response {
	return Response{Success: true, Data: data}
}

// Failure wraps a human-readable message in a failed envelope.
func Failure(message string) Response {
	return Response{Success: false, Error: &message}
}
