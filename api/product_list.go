package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/pagination"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ProductList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	page, perPage := pageArgs(c)

	q := a.DB.Model(&model.Product{}).Preload("Category")

	switch c.Query("status") {
	case "active":
		q = q.Where("status = ?", 1)
	case "inactive":
		q = q.Where("status != ?", 1)
	}

	var products []model.Product

	paged, err := pagination.Paginate(q, c.Request.URL.Path, page, perPage, &products)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to list products", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.List(c, "Products Fetched Successfully",
		newProductResources(products), pagination.Build(paged, "products"))
}
