package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) ProductFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var product model.Product

	err := a.DB.Preload("Category").Where("id = ?", c.Param("id")).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}

		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to fetch product", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.OK(c, "Product details fetched successfully", newProductResource(&product))
}
