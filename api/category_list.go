package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryList returns every category unpaged, the admin UI renders the
// whole set at once.
func (a *API) CategoryList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var categories []model.ProductCategory

	if err := a.DB.Find(&categories).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to list categories", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.OK(c, "Categories Fetched Successfully", newCategoryResources(categories))
}
