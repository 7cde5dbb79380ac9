package model

// API error codes returned in the response envelope
const (
	CodeNotInitialized      = "NOT_INITIALIZED"
	CodeAlreadyInitialized  = "ALREADY_INITIALIZED"
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeMissingTrustline    = "MISSING_TRUSTLINE"
	CodeAuthorizationFailed = "AUTHORIZATION_FAILED"
	CodeXRPLRequestFailed   = "XRPL_REQUEST_FAILED"
)
