package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reviewCreateBody struct {
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (a *API) ReviewCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data reviewCreateBody
	if err := c.ShouldBind(&data); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if data.Rating < 1 || data.Rating > 5 {
		response.Error(c, http.StatusUnprocessableEntity, "Rating must be between 1 and 5.")
		return
	}

	var count int64
	a.DB.Model(&model.Product{}).Where("id = ?", data.ProductID).Count(&count)
	if count == 0 {
		response.Error(c, http.StatusUnprocessableEntity, "The selected product does not exist.")
		return
	}

	review := model.Review{
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Rating:    data.Rating,
		Comment:   data.Comment,
	}

	if err := a.DB.Create(&review).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to create review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.Created(c, "Review created successfully", newReviewResource(&review))
}
