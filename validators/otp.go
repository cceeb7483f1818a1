package validators

import "errors"

var (
	ErrOTPEmpty  = errors.New("OTP is required.")
	ErrOTPFormat = errors.New("The OTP must be 6 digits.")
)

func OTPValidator(code string) error {
	if code == "" {
		return ErrOTPEmpty
	}

	if len(code) != 6 {
		return ErrOTPFormat
	}

	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrOTPFormat
		}
	}

	return nil
}
