package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/pagination"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ReviewList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	page, perPage := pageArgs(c)

	q := a.DB.Model(&model.Review{}).Preload("Customer")

	var reviews []model.Review

	paged, err := pagination.Paginate(q, c.Request.URL.Path, page, perPage, &reviews)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to list reviews", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.List(c, "Reviews Fetched Successfully",
		newReviewResources(reviews), pagination.Build(paged, ""))
}
