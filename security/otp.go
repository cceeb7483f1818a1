package security

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenerateOTP returns a uniformly random 6-digit login code in
// [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
