package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"
	"nutristore/catalog-api/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type productCreateBody struct {
	Name       string  `json:"name"`
	CategoryID uint    `json:"category_id"`
	Status     *int    `json:"status"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Weight     float64 `json:"weight"`
	ImageURL   string  `json:"image_url"`
}

func (a *API) ProductCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data productCreateBody
	if err := c.ShouldBind(&data); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Name == "" {
		response.Error(c, http.StatusUnprocessableEntity, "Name is required.")
		return
	}

	if data.Price < 0 {
		response.Error(c, http.StatusUnprocessableEntity, "Price can't be negative.")
		return
	}

	var category model.ProductCategory

	err := a.DB.Where("id = ?", data.CategoryID).First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusUnprocessableEntity, "The selected category does not exist.")
			return
		}

		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to check category", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	status := 1
	if data.Status != nil {
		status = *data.Status
	}

	product := model.Product{
		Name:       data.Name,
		CategoryID: data.CategoryID,
		Status:     status,
		Stock:      data.Quantity,
		Mrp:        data.Price,
		Weight:     data.Weight,
		SvpPoints:  util.SVPPoints(data.Price),
		ImageURL:   data.ImageURL,
		Category:   &category,
	}

	if err := a.DB.Omit("Category").Create(&product).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to create product", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.Created(c, "Product Created Successfully", newProductResource(&product))
}
