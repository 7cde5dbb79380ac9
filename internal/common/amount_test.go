package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropsToXRP(t *testing.T) {
	assert.Equal(t, "0.000001", DropsToXRP(1))
	assert.Equal(t, "1.000000", DropsToXRP(1000000))
	assert.Equal(t, "0.200000", DropsToXRP(200000))
	assert.Equal(t, "12.345678", DropsToXRP(12345678))
}

func TestXRPToDrops(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"1", 1000000},
		{"1.5", 1500000},
		{"0.000001", 1},
		{"12.345678", 12345678},
		{" 2 ", 2000000},
	}
	for _, tc := range cases {
		got, err := XRPToDrops(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestXRPToDropsInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "-1"} {
		_, err := XRPToDrops(in)
		assert.Error(t, err, in)
	}
}

func TestXRPRoundTrip(t *testing.T) {
	for _, drops := range []uint64{0, 1, 999999, 1000000, 98765432100} {
		got, err := XRPToDrops(DropsToXRP(drops))
		require.NoError(t, err)
		assert.Equal(t, drops, got)
	}
}

func TestValidateIssuedAmount(t *testing.T) {
	for _, in := range []string{"0", "1000000", "0.5", "123.456"} {
		assert.NoError(t, ValidateIssuedAmount(in), in)
	}
	for _, in := range []string{"", ".", "1.", ".5", "-1", "1e6", "1.2.3", "abc"} {
		assert.Error(t, ValidateIssuedAmount(in), in)
	}
}
