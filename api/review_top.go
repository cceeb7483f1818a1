package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/pagination"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TopRatedProducts lists products that collected at least one 5-star
// review, paged.
func (a *API) TopRatedProducts(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	page, perPage := pageArgs(c)

	q := a.DB.Model(&model.Product{}).
		Preload("Category").
		Where("id IN (?)", a.DB.Model(&model.Review{}).
			Select("product_id").
			Where("rating = ?", 5))

	var products []model.Product

	paged, err := pagination.Paginate(q, c.Request.URL.Path, page, perPage, &products)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to list top rated products", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if paged.Total == 0 {
		response.Error(c, http.StatusNotFound, "No top-rated products found")
		return
	}

	response.List(c, "Top-rated products fetched successfully",
		newProductResources(products), pagination.Build(paged, "products"))
}
