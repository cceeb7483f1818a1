package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) CustomerDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

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

	if err := a.DB.Delete(&customer).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to delete customer", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}
