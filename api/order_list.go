package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/pagination"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) OrderList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	page, perPage := pageArgs(c)

	q := a.DB.Model(&model.Order{}).
		Preload("Customer").
		Preload("Items.Product").
		Order("created_at desc")

	var orders []model.Order

	paged, err := pagination.Paginate(q, c.Request.URL.Path, page, perPage, &orders)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to list orders", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.List(c, "Orders Fetched Successfully", orders, pagination.Build(paged, ""))
}
