package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"
	"nutristore/catalog-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type customerCreateBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	MobileNo string `json:"mobile_number"`
	Password string `json:"password"`
}

func (a *API) CustomerCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data customerCreateBody
	if err := c.ShouldBind(&data); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Name == "" {
		response.Error(c, http.StatusUnprocessableEntity, "Name is required.")
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		response.ValidationError(c, err)
		return
	}

	var found bool

	r := a.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", data.Email).
		Find(&found)
	if r.Error != nil && r.Error != gorm.ErrRecordNotFound {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to check if customer is registered", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if found {
		response.Error(c, http.StatusConflict, "This email is already registered. Please login or use a different email")
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	customer := model.User{
		Name:         data.Name,
		Email:        data.Email,
		MobileNo:     data.MobileNo,
		PasswordHash: hash,
		Status:       1,
	}

	if err := a.DB.Create(&customer).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to create customer", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.Created(c, "Customer created successfully", newCustomerResource(&customer))
}
