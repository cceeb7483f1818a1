package api

import (
	"net/http"
	"time"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"
	"nutristore/catalog-api/security"
	"nutristore/catalog-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type verifyBody struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

// AuthVerifyOTP exchanges a valid (email, code) pair for a bearer token.
// On success both OTP columns are cleared, so the code can't be replayed.
func (a *API) AuthVerifyOTP(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data verifyBody
	if err := c.ShouldBind(&data); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := validators.OTPValidator(data.Otp); err != nil {
		response.ValidationError(c, err)
		return
	}

	var user model.User

	err := a.DB.Scopes(model.Active).
		Where("email = ? AND otp = ? AND otp_expires_at >= ?", data.Email, data.Otp, time.Now()).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// A wrong code and an expired one get the same answer, the
			// caller must not learn which part failed.
			response.Error(c, http.StatusBadRequest, "Invalid or expired OTP.")
			return
		}

		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to look up OTP", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"otp":               nil,
			"otp_expires_at":    nil,
			"email_verified_at": time.Now(),
		}).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to clear OTP", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	token, err := security.MakeAuthToken(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to issue auth token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.OK(c, "OTP verified successfully.", gin.H{
		"access_token": token,
	})
}
