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

func (a *API) ProductStatus(c *gin.Context) {
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

	var product model.Product

	err := a.DB.Where("id = ?", c.Param("id")).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}

		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to fetch product", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&product).Update("status", *data.Status).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to update product status", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.OK(c, "Product status updated successfully", newProductResource(&product))
}
