package common

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// XRPDecimals is the number of decimal places of XRP (drops)
	XRPDecimals = 6
)

// DropsToXRP converts drops to an XRP string without float precision loss
func DropsToXRP(drops uint64) string {
	return formatWithDecimals(drops, XRPDecimals)
}

// XRPToDrops converts an XRP string to drops without float precision loss
func XRPToDrops(xrp string) (uint64, error) {
	return parseWithDecimals(xrp, XRPDecimals)
}

// ValidateIssuedAmount checks that s is a non-negative decimal amount string
// as accepted for issued-currency trust line limits
func ValidateIssuedAmount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("empty amount")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return fmt.Errorf("invalid decimal format")
	}
	for _, part := range parts {
		if part == "" {
			return fmt.Errorf("invalid decimal format")
		}
		if _, err := strconv.ParseUint(part, 10, 64); err != nil {
			return fmt.Errorf("invalid decimal format")
		}
	}
	return nil
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(1500000, 6) = "1.500000"
func formatWithDecimals(value uint64, decimals int) string {
	s := fmt.Sprintf("%d", value)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("1.5", 6) = 1500000
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")

	if len(parts) == 1 {
		// No decimal point - multiply by 10^decimals
		n, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return 0, err
		}
		for i := 0; i < decimals; i++ {
			n *= 10
		}
		return n, nil
	}

	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := parts[1]

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	// Combine and parse
	combined := whole + frac
	return strconv.ParseUint(combined, 10, 64)
}
