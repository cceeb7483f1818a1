package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// pageArgs resolves the page/per_page query params with the configured
// defaults and ceiling.
func pageArgs(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	perPage, _ = strconv.Atoi(c.Query("per_page"))
	if perPage <= 0 {
		perPage = viper.GetInt("pagination.per_page")
		if perPage <= 0 {
			perPage = 10
		}
	}

	if max := viper.GetInt("pagination.max_per_page"); max > 0 && perPage > max {
		perPage = max
	}

	return page, perPage
}
