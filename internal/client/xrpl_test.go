package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSubmitResult(t *testing.T) {
	// Validated with a tes result succeeds
	assert.NoError(t, checkSubmitResult("tesSUCCESS", true))

	// Meta without a result code is not treated as a failure
	assert.NoError(t, checkSubmitResult("", true))

	// A validated tec-class result is included in the ledger as an engine
	// failure and must classify as a SubmitError
	err := checkSubmitResult("tecNO_PERMISSION", true)
	require.Error(t, err)
	assert.True(t, IsSubmitError(err))
	assert.Contains(t, err.Error(), "tecNO_PERMISSION")

	err = checkSubmitResult("tecPATH_DRY", true)
	assert.True(t, IsSubmitError(err))

	// A transaction that never validated is also a SubmitError
	err = checkSubmitResult("", false)
	require.Error(t, err)
	assert.True(t, IsSubmitError(err))
}

func TestEngineResult(t *testing.T) {
	assert.Equal(t, "tesSUCCESS", engineResult(map[string]any{"TransactionResult": "tesSUCCESS"}))
	assert.Equal(t, "", engineResult(map[string]any{"TransactionResult": 7}))
	assert.Equal(t, "", engineResult(nil))
	assert.Equal(t, "", engineResult("unexpected shape"))
}
