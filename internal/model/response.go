package model

// Envelope is the consistent JSON structure for all API responses
type Envelope struct {
	OK      bool        `json:"ok"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Created bool        `json:"created,omitempty"`
}

// AuthorizeRequest represents request for POST /api/trustline/authorize
type AuthorizeRequest struct {
	Address  string `json:"address"`
	Currency string `json:"currency"`
}

// AuthorizeResponse represents response data for POST /api/trustline/authorize
type AuthorizeResponse struct {
	AlreadyAuthorized bool   `json:"alreadyAuthorized"`
	TxHash            string `json:"txHash,omitempty"`
}
