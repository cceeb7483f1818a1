package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"nutristore/catalog-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginUnknownEmail(t *testing.T) {
	a, _ := newTestAPI(t)

	w, e := doJSON(t, a, http.MethodPost, "/api/login", map[string]string{"email": "a@b.com"}, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No customer found with this email address", e.Message)
}

func TestLoginValidation(t *testing.T) {
	a, _ := newTestAPI(t)

	w, e := doJSON(t, a, http.MethodPost, "/api/login", map[string]string{}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Email is required.", e.Message)

	w, e = doJSON(t, a, http.MethodPost, "/api/login", map[string]string{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Please provide a valid email address.", e.Message)
}

func TestLoginInactiveAccount(t *testing.T) {
	a, m := newTestAPI(t)
	seedCustomer(t, a, "jane@example.com", 0)

	w, e := doJSON(t, a, http.MethodPost, "/api/login", map[string]string{"email": "jane@example.com"}, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No customer found with this email address", e.Message)
	assert.Zero(t, m.sent)
}

func TestLoginIssuesOTP(t *testing.T) {
	a, m := newTestAPI(t)
	u := seedCustomer(t, a, "jane@example.com", 1)

	w, e := doJSON(t, a, http.MethodPost, "/api/login", map[string]string{"email": "jane@example.com"}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, e.Success)
	assert.Equal(t, "We have Sent you an OTP to Email for Verification", e.Message)

	assert.Equal(t, 1, m.sent)
	assert.Equal(t, "jane@example.com", m.to)
	assert.Len(t, m.code, 6)

	var stored model.User
	require.NoError(t, a.DB.First(&stored, u.ID).Error)
	require.NotNil(t, stored.Otp)
	assert.Equal(t, m.code, *stored.Otp)

	require.NotNil(t, stored.OtpExpiresAt)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), *stored.OtpExpiresAt, 30*time.Second)
}

func TestLoginVerifyRoundTrip(t *testing.T) {
	a, m := newTestAPI(t)
	u := seedCustomer(t, a, "jane@example.com", 1)

	w, _ := doJSON(t, a, http.MethodPost, "/api/login", map[string]string{"email": "jane@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, e := doJSON(t, a, http.MethodPost, "/api/verify-otp", map[string]string{
		"email": "jane@example.com",
		"otp":   m.code,
	}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OTP verified successfully.", e.Message)

	var body struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &body))
	assert.NotEmpty(t, body.AccessToken)

	var stored model.User
	require.NoError(t, a.DB.First(&stored, u.ID).Error)
	assert.Nil(t, stored.Otp)
	assert.Nil(t, stored.OtpExpiresAt)
	assert.NotNil(t, stored.EmailVerifiedAt)

	// The code was cleared on success, a replay must be rejected.
	w, e = doJSON(t, a, http.MethodPost, "/api/verify-otp", map[string]string{
		"email": "jane@example.com",
		"otp":   m.code,
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired OTP.", e.Message)
}

func TestVerifyWrongCode(t *testing.T) {
	a, _ := newTestAPI(t)
	seedCustomer(t, a, "jane@example.com", 1)

	w, _ := doJSON(t, a, http.MethodPost, "/api/login", map[string]string{"email": "jane@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Generated codes start at 100000, so this one can never match.
	w, e := doJSON(t, a, http.MethodPost, "/api/verify-otp", map[string]string{
		"email": "jane@example.com",
		"otp":   "000000",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired OTP.", e.Message)
}

func TestVerifyExpiredCode(t *testing.T) {
	a, _ := newTestAPI(t)
	u := seedCustomer(t, a, "jane@example.com", 1)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, a.DB.Model(&model.User{}).Where("id = ?", u.ID).Updates(map[string]any{
		"otp":            "123456",
		"otp_expires_at": expired,
	}).Error)

	w, e := doJSON(t, a, http.MethodPost, "/api/verify-otp", map[string]string{
		"email": "jane@example.com",
		"otp":   "123456",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired OTP.", e.Message)
}

func TestSecondLoginInvalidatesFirst(t *testing.T) {
	a, m := newTestAPI(t)
	u := seedCustomer(t, a, "jane@example.com", 1)

	// Simulate an earlier issued code still inside its window.
	valid := time.Now().Add(4 * time.Minute)
	require.NoError(t, a.DB.Model(&model.User{}).Where("id = ?", u.ID).Updates(map[string]any{
		"otp":            "000000",
		"otp_expires_at": valid,
	}).Error)

	w, _ := doJSON(t, a, http.MethodPost, "/api/login", map[string]string{"email": "jane@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, e := doJSON(t, a, http.MethodPost, "/api/verify-otp", map[string]string{
		"email": "jane@example.com",
		"otp":   "000000",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired OTP.", e.Message)

	w, _ = doJSON(t, a, http.MethodPost, "/api/verify-otp", map[string]string{
		"email": "jane@example.com",
		"otp":   m.code,
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyValidation(t *testing.T) {
	a, _ := newTestAPI(t)

	w, e := doJSON(t, a, http.MethodPost, "/api/verify-otp", map[string]string{
		"email": "jane@example.com",
		"otp":   "12345",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "The OTP must be 6 digits.", e.Message)

	w, e = doJSON(t, a, http.MethodPost, "/api/verify-otp", map[string]string{
		"email": "jane@example.com",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "OTP is required.", e.Message)
}

func TestLoginMailFailureKeepsOTP(t *testing.T) {
	a, m := newTestAPI(t)
	u := seedCustomer(t, a, "jane@example.com", 1)
	m.fail = true

	w, e := doJSON(t, a, http.MethodPost, "/api/login", map[string]string{"email": "jane@example.com"}, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Something went wrong. Please try again!", e.Message)

	// Delivery failed but the issued code stays usable.
	var stored model.User
	require.NoError(t, a.DB.First(&stored, u.ID).Error)
	assert.NotNil(t, stored.Otp)
	assert.NotNil(t, stored.OtpExpiresAt)
}

func TestUserFetchRequiresToken(t *testing.T) {
	a, m := newTestAPI(t)
	seedCustomer(t, a, "jane@example.com", 1)

	w, _ := doJSON(t, a, http.MethodGet, "/api/user", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, a, http.MethodGet, "/api/user", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, a, http.MethodPost, "/api/login", map[string]string{"email": "jane@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, e := doJSON(t, a, http.MethodPost, "/api/verify-otp", map[string]string{
		"email": "jane@example.com",
		"otp":   m.code,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &body))

	w, e = doJSON(t, a, http.MethodGet, "/api/user", nil, body.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &fetched))
	assert.Equal(t, "jane@example.com", fetched.Email)
}
