package openweather

import "fmt"

// APIError is the provider's structured error payload. It is decoded from
// the response body only after the body has failed to decode as the
// requested success shape.
type APIError struct {
	// Code is an HTTP-style status code carried inside the body.
	Code    int    `json:"cod"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client error (%d): %s", e.Code, e.Message)
}

// DecodeError carries the original unmarshal failure together with the raw
// body text so a bad payload can be diagnosed without re-running the
// request.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v while deserializing JSON: %s", e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RequestError wraps a transport-level failure: DNS, TLS, connection
// refused, timeout.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
