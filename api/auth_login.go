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

type loginBody struct {
	Email string `json:"email"`
}

// AuthLogin starts the passwordless login: a fresh 6-digit code is stored
// on the matched customer row and mailed out. A repeated call overwrites
// the previous code, which stops verifying immediately.
func (a *API) AuthLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		response.ValidationError(c, err)
		return
	}

	var user model.User

	err := a.DB.Scopes(model.Active).Where("email = ?", data.Email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, "No customer found with this email address")
			return
		}

		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to look up customer", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	code, err := security.GenerateOTP()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to generate OTP", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"otp":            code,
			"otp_expires_at": time.Now().Add(5 * time.Minute),
		}).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to store OTP", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// The code stays persisted even when delivery fails. A transient mail
	// outage must not invalidate an already issued OTP.
	if err := a.Mailer.SendLoginOTP(user.Email, code); err != nil {
		zap.L().Error("Failed to send OTP email", zap.Error(err), zap.String("requestID", requestID))

		response.Error(c, http.StatusInternalServerError, "Something went wrong. Please try again!")
		return
	}

	c.JSON(http.StatusOK, response.Envelope{
		Success: true,
		Message: "We have Sent you an OTP to Email for Verification",
		Status:  http.StatusOK,
	})
}
