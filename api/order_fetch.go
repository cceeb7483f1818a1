package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) OrderFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var order model.Order

	err := a.DB.
		Preload("Customer").
		Preload("Items.Product").
		Where("id = ?", c.Param("id")).
		First(&order).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, "Order not found")
			return
		}

		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to fetch order", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.OK(c, "Order details fetched successfully", order)
}
