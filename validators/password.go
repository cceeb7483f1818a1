package validators

import "errors"

var (
	ErrPasswordEmpty    = errors.New("Password is required.")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters.")
)

func PasswordValidator(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if len(p) < 6 {
		return ErrPasswordTooShort
	}

	return nil
}
