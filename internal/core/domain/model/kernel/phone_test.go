package kernel_test

import (
	"testing"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	testCases := []struct {
		raw     string
		digits  string
		display string
	}{
		{"01012345678", "01012345678", "010-1234-5678"},
		{"010-1234-5678", "01012345678", "010-1234-5678"},
		{"02 123 4567", "021234567", "02-123-4567"},
		{"0212345678", "0212345678", "02-1234-5678"},
		{"031-123-4567", "0311234567", "031-123-4567"},
		{"1588-1234", "15881234", "1588-1234"},
		{"070-1234-5678", "07012345678", "070-1234-5678"},
		{"0505-123-4567", "05051234567", "0505-123-4567"},
		{"+82 10-1234-5678", "01012345678", "010-1234-5678"},
		{"+82-2-123-4567", "021234567", "02-123-4567"},
		{"０１０１２３４５６７８", "01012345678", "010-1234-5678"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			p, err := kernel.NewPhone(tc.raw)

			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, tc.digits, p.Digits())
			assert.Equal(t, tc.display, p.Display())
			assert.Equal(t, tc.display, p.String())
		})
	}
}

func TestNewPhone_DigitsAreASCII(t *testing.T) {
	p, err := kernel.NewPhone("０２-１２３-４５６７")
	require.NoError(t, err)

	for _, r := range p.Digits() {
		assert.True(t, r >= '0' && r <= '9', "unexpected rune %q", r)
	}
}

func TestNewPhone_RequiresDigits(t *testing.T) {
	_, err := kernel.NewPhone("--")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero kernel.Phone
	require.Error(t, zero.Validate())
}

func TestNewPhone_RejectsUnparsable(t *testing.T) {
	_, err := kernel.NewPhone("1")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
