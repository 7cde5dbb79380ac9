package xrpl

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/client"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
)

// EnsureIssuerAuthorization checks the holder's trust line toward the issuer
// for the given currency and authorizes it when needed:
//
//  1. no line to the issuer for the currency -> MISSING_TRUSTLINE, nothing
//     submitted;
//  2. line exists and is already authorized -> success, nothing submitted;
//  3. otherwise one signed TrustSet with tfSetfAuth is submitted from the
//     issuer; a rejected transaction reports AUTHORIZATION_FAILED, a failed
//     query or submission reports XRPL_REQUEST_FAILED.
//
// Exactly one transaction at most, no retries.
func (s *Service) EnsureIssuerAuthorization(ctx context.Context, holder, currency string) (*model.AuthorizeResponse, error) {
	if holder == "" {
		return nil, errInvalidRequest("address is required")
	}
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}

	doc, err := s.loadWalletDoc(ctx)
	if err != nil {
		return nil, err
	}
	issuer := doc.WalletByRole(model.RoleIssuer)
	if issuer == nil {
		return nil, errNotInitialized()
	}

	lines, err := s.ledger.AccountLines(ctx, holder)
	if err != nil {
		s.log.Error("trust line query failed", zap.String("holder", holder), zap.Error(err))
		return nil, &OpError{Code: model.CodeXRPLRequestFailed, Message: fmt.Sprintf("trust line query failed: %v", err)}
	}

	line := findLine(lines, issuer.Address, currency)
	if line == nil {
		return nil, &OpError{
			Code:    model.CodeMissingTrustline,
			Message: fmt.Sprintf("no trust line from %s to issuer for %s", holder, currency),
		}
	}

	// From the holder's account_lines, PeerAuthorized means the issuer side
	// has already authorized this line.
	if line.PeerAuthorized {
		return &model.AuthorizeResponse{AlreadyAuthorized: true}, nil
	}

	hash, err := s.ledger.AuthorizeTrustLine(ctx, issuer.Seed, holder, currency, doc.SourceTag)
	if err != nil {
		s.log.Error("trust line authorization failed",
			zap.String("holder", holder),
			zap.String("currency", currency),
			zap.Error(err))
		if client.IsSubmitError(err) {
			return nil, &OpError{Code: model.CodeAuthorizationFailed, Message: fmt.Sprintf("authorization rejected: %v", err)}
		}
		return nil, &OpError{Code: model.CodeXRPLRequestFailed, Message: fmt.Sprintf("authorization submit failed: %v", err)}
	}

	s.log.Info("trust line authorized",
		zap.String("holder", holder),
		zap.String("currency", currency),
		zap.String("txHash", hash))
	return &model.AuthorizeResponse{TxHash: hash}, nil
}

func findLine(lines []client.TrustLine, issuer, currency string) *client.TrustLine {
	for i := range lines {
		if lines[i].Account == issuer && lines[i].Currency == currency {
			return &lines[i]
		}
	}
	return nil
}
