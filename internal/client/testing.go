package client

import "context"

// FakeLedger is an in-memory Ledger used by tests. Lines maps an account
// address to its trust lines. Every AuthorizeTrustLine call is recorded so
// tests can assert how many transactions were submitted.
type FakeLedger struct {
	Lines map[string][]TrustLine

	LinesErr     error
	AuthorizeErr error
	TxHash       string

	Submitted []FakeSubmission
}

// FakeSubmission records one AuthorizeTrustLine call
type FakeSubmission struct {
	Holder    string
	Currency  string
	SourceTag uint32
}

// AccountLines returns the configured lines for the address
func (f *FakeLedger) AccountLines(_ context.Context, address string) ([]TrustLine, error) {
	if f.LinesErr != nil {
		return nil, f.LinesErr
	}
	return f.Lines[address], nil
}

// AuthorizeTrustLine records the submission and returns the configured outcome
func (f *FakeLedger) AuthorizeTrustLine(_ context.Context, _, holder, currency string, sourceTag uint32) (string, error) {
	f.Submitted = append(f.Submitted, FakeSubmission{Holder: holder, Currency: currency, SourceTag: sourceTag})
	if f.AuthorizeErr != nil {
		return "", f.AuthorizeErr
	}
	if f.TxHash == "" {
		return "A1B2C3D4E5F6A7B8C9D0E1F2A3B4C5D6E7F8A9B0C1D2E3F4A5B6C7D8E9F0A1B2", nil
	}
	return f.TxHash, nil
}
