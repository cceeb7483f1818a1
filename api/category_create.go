package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type categoryBody struct {
	Name   string `json:"name"`
	Status *int   `json:"status"`
}

func (a *API) CategoryCreate(c *gin.Context) {
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

	var count int64
	a.DB.Model(&model.ProductCategory{}).Where("name = ?", data.Name).Count(&count)
	if count > 0 {
		response.Error(c, http.StatusConflict, "A category with this name already exists")
		return
	}

	status := 1
	if data.Status != nil {
		status = *data.Status
	}

	category := model.ProductCategory{
		Name:   data.Name,
		Status: status,
	}

	if err := a.DB.Create(&category).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to create category", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.Created(c, "Category created successfully", newCategoryResource(&category))
}
