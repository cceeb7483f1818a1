package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/pagination"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryActiveList is the public storefront listing: active categories
// only, paged.
func (a *API) CategoryActiveList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	page, perPage := pageArgs(c)

	q := a.DB.Model(&model.ProductCategory{}).Where("status = ?", 1)

	var categories []model.ProductCategory

	paged, err := pagination.Paginate(q, c.Request.URL.Path, page, perPage, &categories)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to list active categories", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.List(c, "Categories Fetched Successfully",
		newCategoryResources(categories), pagination.Build(paged, "categories"))
}
