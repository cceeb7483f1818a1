package api

import (
	"fmt"
	"net/http"
	"strings"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// ProductImageUpload stores a product image in the configured bucket and
// points the product's image_url at it.
func (a *API) ProductImageUpload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if a.S3 == nil {
		response.Error(c, http.StatusNotImplemented, "Image storage is not configured")
		return
	}

	if !strings.HasPrefix(c.Request.Header.Get("Content-Type"), "multipart/form-data") {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}

	var product model.Product

	err := a.DB.Where("id = ?", c.Param("id")).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}

		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to fetch product", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No image provided")
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to open uploaded image", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer f.Close()

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to detect image type", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	allowed := false
	for _, t := range allowedImageTypes {
		if mime.Is(t) {
			allowed = true
			break
		}
	}

	if !allowed {
		response.Error(c, http.StatusBadRequest, "Unsupported image type")
		return
	}

	if _, err := f.Seek(0, 0); err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to rewind uploaded image", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	key := fmt.Sprintf("products/%d%s", product.ID, mime.Extension())

	url, err := a.S3.Upload(c.Request.Context(), key, mime.String(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to upload product image", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&product).Update("image_url", url).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to store image URL", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	response.OK(c, "Product image uploaded successfully", newProductResource(&product))
}
