package validators

import "errors"

var ErrStatusInvalid = errors.New("status must be either 1 or 0.")

// StatusValidator checks the active/inactive toggle sent by the status
// endpoints.
func StatusValidator(s *int) error {
	if s == nil {
		return errors.New("status is required.")
	}

	if *s != 0 && *s != 1 {
		return ErrStatusInvalid
	}

	return nil
}
