package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/pagination"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductsByCategory is the public storefront listing: active products in
// one category, paged.
func (a *API) ProductsByCategory(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	page, perPage := pageArgs(c)

	q := a.DB.Model(&model.Product{}).
		Preload("Category").
		Where("category_id = ? AND status = ?", c.Param("id"), 1)

	var products []model.Product

	paged, err := pagination.Paginate(q, c.Request.URL.Path, page, perPage, &products)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to list products by category", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.List(c, "Products Fetched Successfully",
		newProductResources(products), pagination.Build(paged, "products"))
}
