package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/pagination"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ReviewsByProduct(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	page, perPage := pageArgs(c)

	q := a.DB.Model(&model.Review{}).
		Preload("Customer").
		Where("product_id = ?", c.Param("productId"))

	var reviews []model.Review

	paged, err := pagination.Paginate(q, c.Request.URL.Path, page, perPage, &reviews)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to list product reviews", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if paged.Total == 0 {
		response.Error(c, http.StatusNotFound, "No reviews found for this product")
		return
	}

	response.List(c, "Product Reviews Fetched Successfully",
		newReviewResources(reviews), pagination.Build(paged, "reviews"))
}
