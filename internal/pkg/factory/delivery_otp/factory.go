package delivery_otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const otpDigits = 6

type OTPFactory struct{}

func New() *OTPFactory {
	return &OTPFactory{}
}

// Generate returns a zero-padded numeric code handed to the consignee
// and checked at delivery.
func (f *OTPFactory) Generate() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
