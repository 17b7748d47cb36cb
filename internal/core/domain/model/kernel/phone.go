package kernel

import (
	"strings"
	"unicode"

	"storecourier/internal/pkg/errs"
	"storecourier/internal/pkg/guard"

	"github.com/nyaruka/phonenumbers"
)

const (
	phoneRegion      = "KR"
	phoneCountryCode = 82
)

var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")

// Phone keeps the ASCII digits of a phone number next to its hyphenated display form.
type Phone struct { //nolint:recvcheck //using for validation
	digits  string
	display string
	guard   guard.ConstructorGuard
}

// NewPhone parses raw as a Korean number. Domestic numbers, including +82 ones, are kept in
// national form (010-1234-5678); foreign numbers keep their country code.
func NewPhone(raw string) (Phone, error) {
	if strings.IndexFunc(raw, unicode.IsDigit) < 0 {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	num, err := phonenumbers.Parse(raw, phoneRegion)
	if err != nil {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone", err)
	}

	format := phonenumbers.NATIONAL
	if num.GetCountryCode() != phoneCountryCode {
		format = phonenumbers.INTERNATIONAL
	}
	display := phonenumbers.Format(num, format)

	return Phone{
		digits:  asciiDigits(display),
		display: display,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// Digits returns the number without separators, e.g. "01012345678".
func (p Phone) Digits() string {
	return p.digits
}

// Display returns the hyphenated form: 010-1234-5678, 02-123-4567, 0505-123-4567, 1588-1234.
func (p Phone) Display() string {
	return p.display
}

func (p Phone) String() string {
	return p.display
}
