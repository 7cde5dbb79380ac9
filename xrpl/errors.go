package xrpl

import (
	"errors"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
)

// OpError is an operation failure carrying one of the API error codes
type OpError struct {
	Code    string
	Message string
}

func (e *OpError) Error() string {
	return e.Message
}

// CodeOf returns the API error code of err, or "" when err carries none
func CodeOf(err error) string {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Code
	}
	return ""
}

func errNotInitialized() *OpError {
	return &OpError{Code: model.CodeNotInitialized, Message: "document not initialized"}
}

func errAlreadyInitialized() *OpError {
	return &OpError{Code: model.CodeAlreadyInitialized, Message: "wallet document already exists"}
}

func errInvalidRequest(msg string) *OpError {
	return &OpError{Code: model.CodeInvalidRequest, Message: msg}
}
