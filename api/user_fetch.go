package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserFetch returns the customer behind the presented bearer token.
func (a *API) UserFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var user model.User

	err := a.DB.Where("id = ?", userID).First(&user).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to fetch authenticated customer", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.OK(c, "Customer details fetched successfully", newCustomerResource(&user))
}
