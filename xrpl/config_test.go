package xrpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/client"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
)

func testConfig() model.WalletConfig {
	return model.WalletConfig{
		Issuer: model.IssuerFlags{
			DefaultRipple: true,
			RequireAuth:   true,
			DisallowXRP:   true,
		},
		TrustLine: model.TrustLineSetup{
			Currency: testCurrencyCode,
			Limit:    "1000000",
			Results: []model.TrustLineResult{
				{Role: model.RoleHot, Address: "rHotWalletAddr1111111111111111111", OK: true, TxHash: "ABC123"},
				{Role: model.RoleCustomer, Address: testHolderAddr, OK: false, Error: "tecNO_LINE"},
			},
		},
	}
}

func TestConfigNotInitialized(t *testing.T) {
	svc, store := newTestService(t, &client.FakeLedger{})

	// No wallet document at all
	_, err := svc.Config(context.Background())
	assert.Equal(t, model.CodeNotInitialized, CodeOf(err))

	// Wallet document without a config sub-document
	seedWalletDoc(t, store, nil)
	_, err = svc.Config(context.Background())
	assert.Equal(t, model.CodeNotInitialized, CodeOf(err))
}

func TestSetConfigRoundTrip(t *testing.T) {
	svc, store := newTestService(t, &client.FakeLedger{})
	seedWalletDoc(t, store, nil)
	ctx := context.Background()

	stored, created, err := svc.SetConfig(ctx, testConfig())
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, stored.Issuer.ConfiguredAt)

	_, err = time.Parse(time.RFC3339, stored.Issuer.ConfiguredAt)
	assert.NoError(t, err, "configuredAt must be RFC3339")

	got, err := svc.Config(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	// Second write overwrites, no longer created
	_, created, err = svc.SetConfig(ctx, testConfig())
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSetConfigRequiresWalletDoc(t *testing.T) {
	svc, _ := newTestService(t, &client.FakeLedger{})

	_, _, err := svc.SetConfig(context.Background(), testConfig())
	assert.Equal(t, model.CodeNotInitialized, CodeOf(err))
}

func TestSetConfigValidation(t *testing.T) {
	svc, store := newTestService(t, &client.FakeLedger{})
	seedWalletDoc(t, store, nil)
	ctx := context.Background()

	bad := testConfig()
	bad.TrustLine.Currency = "TOOLONG"
	_, _, err := svc.SetConfig(ctx, bad)
	assert.Equal(t, model.CodeInvalidRequest, CodeOf(err))

	// 40 characters is only acceptable as a hex code
	bad = testConfig()
	bad.TrustLine.Currency = "ZZZB013A95F14B0044F78A264E41713C64B5F892" // leading non-hex chars
	_, _, err = svc.SetConfig(ctx, bad)
	assert.Equal(t, model.CodeInvalidRequest, CodeOf(err))

	good := testConfig()
	good.TrustLine.Currency = "015841551A748AD2C1F76FF6ECB0CCCD00000000"
	_, _, err = svc.SetConfig(ctx, good)
	assert.NoError(t, err)

	bad = testConfig()
	bad.TrustLine.Limit = "not-a-number"
	_, _, err = svc.SetConfig(ctx, bad)
	assert.Equal(t, model.CodeInvalidRequest, CodeOf(err))

	bad = testConfig()
	bad.TrustLine.Results[0].Role = "treasurer"
	_, _, err = svc.SetConfig(ctx, bad)
	assert.Equal(t, model.CodeInvalidRequest, CodeOf(err))
}

func TestSetConfigPreservesWallets(t *testing.T) {
	svc, store := newTestService(t, &client.FakeLedger{})
	doc := seedWalletDoc(t, store, nil)
	ctx := context.Background()

	_, _, err := svc.SetConfig(ctx, testConfig())
	require.NoError(t, err)

	reloaded, err := svc.loadWalletDoc(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Wallets, reloaded.Wallets)
	assert.Equal(t, doc.SourceTag, reloaded.SourceTag)
	require.NotNil(t, reloaded.Config)
}
