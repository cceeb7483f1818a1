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

type statusBody struct {
	Status *int `json:"status"`
}

func (a *API) CustomerStatus(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data statusBody
	if err := c.ShouldBind(&data); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if err := validators.StatusValidator(data.Status); err != nil {
		response.ValidationError(c, err)
		return
	}

	var customer model.User

	err := a.DB.Where("id = ?", c.Param("id")).First(&customer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, "Customer not found")
			return
		}

		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to fetch customer", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&customer).Update("status", *data.Status).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to update customer status", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.OK(c, "Customer status updated successfully", newCustomerResource(&customer))
}
