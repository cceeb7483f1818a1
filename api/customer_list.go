package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/pagination"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) CustomerList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	page, perPage := pageArgs(c)

	q := a.DB.Model(&model.User{})

	switch c.Query("status") {
	case "active":
		q = q.Scopes(model.Active)
	case "inactive":
		q = q.Where("status != ?", 1)
	}

	var customers []model.User

	paged, err := pagination.Paginate(q, c.Request.URL.Path, page, perPage, &customers)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to list customers", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.List(c, "Customer Fetched Successfully",
		newCustomerResources(customers), pagination.Build(paged, ""))
}
