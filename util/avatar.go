// Package util contains any functions used across the application that don't
// match any other package
package util

import (
	"net/url"
	"strconv"
)

// AvatarURL builds a generated-avatar fallback for customers without an
// uploaded profile image.
func AvatarURL(name string, size int) string {
	q := url.Values{}
	q.Set("name", name)
	q.Set("background", "random")
	q.Set("size", strconv.Itoa(size))
	q.Set("font-size", "0.5")
	q.Set("rounded", "true")
	q.Set("bold", "true")

	return "https://ui-avatars.com/api/?" + q.Encode()
}
