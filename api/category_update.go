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

func (a *API) CategoryUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data categoryBody
	if err := c.ShouldBind(&data); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if data.Name == "" {
		response.Error(c, http.StatusUnprocessableEntity, "Name is required.")
		return
	}

	if err := validators.StatusValidator(data.Status); err != nil {
		response.ValidationError(c, err)
		return
	}

	var category model.ProductCategory

	err := a.DB.Where("id = ?", c.Param("id")).First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, "Category not found")
			return
		}

		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to fetch category", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Uniqueness check has to skip the row being renamed
	var count int64
	a.DB.Model(&model.ProductCategory{}).
		Where("name = ? AND id != ?", data.Name, category.ID).
		Count(&count)
	if count > 0 {
		response.Error(c, http.StatusConflict, "A category with this name already exists")
		return
	}

	err = a.DB.Model(&category).Updates(map[string]any{
		"name":   data.Name,
		"status": *data.Status,
	}).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to update category", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.OK(c, "Category Updated Successfully", newCategoryResource(&category))
}
