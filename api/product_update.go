package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"
	"nutristore/catalog-api/util"
	"nutristore/catalog-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type productUpdateBody struct {
	Name       *string  `json:"name"`
	CategoryID *uint    `json:"category_id"`
	Status     *int     `json:"status"`
	Quantity   *int     `json:"quantity"`
	Price      *float64 `json:"price"`
	Weight     *float64 `json:"weight"`
	ImageURL   *string  `json:"image_url"`
}

// ProductUpdate applies a partial update. A new price also recomputes the
// stored SVP points.
func (a *API) ProductUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data productUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
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

	updates := map[string]any{}

	if data.Name != nil {
		updates["name"] = *data.Name
	}

	if data.CategoryID != nil {
		var count int64
		a.DB.Model(&model.ProductCategory{}).Where("id = ?", *data.CategoryID).Count(&count)
		if count == 0 {
			response.Error(c, http.StatusUnprocessableEntity, "The selected category does not exist.")
			return
		}

		updates["category_id"] = *data.CategoryID
	}

	if data.Status != nil {
		if err := validators.StatusValidator(data.Status); err != nil {
			response.ValidationError(c, err)
			return
		}

		updates["status"] = *data.Status
	}

	if data.Quantity != nil {
		updates["stock"] = *data.Quantity
	}

	if data.Price != nil {
		if *data.Price < 0 {
			response.Error(c, http.StatusUnprocessableEntity, "Price can't be negative.")
			return
		}

		updates["mrp"] = *data.Price
		updates["svp_points"] = util.SVPPoints(*data.Price)
	}

	if data.Weight != nil {
		updates["weight"] = *data.Weight
	}

	if data.ImageURL != nil {
		updates["image_url"] = *data.ImageURL
	}

	if len(updates) > 0 {
		err = a.DB.Model(&product).Updates(updates).Error
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update product")

			zap.L().Error("Failed to update product", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	a.DB.Preload("Category").Where("id = ?", product.ID).First(&product)

	response.OK(c, "Product Updated Successfully", newProductResource(&product))
}
