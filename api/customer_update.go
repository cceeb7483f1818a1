package api

import (
	"net/http"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/response"
	"nutristore/catalog-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type customerUpdateBody struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	MobileNo *string `json:"mobile_number"`
	Status   *int    `json:"status"`
}

// CustomerUpdate applies a partial update, absent fields keep their
// stored values.
func (a *API) CustomerUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data customerUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var customer model.User

	err := a.DB.Where("id = ?", c.Param("id")).First(&customer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, "Customer not found")
			return
		}

		response.Error(c, http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to fetch customer", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updates := map[string]any{}

	if data.Name != nil {
		updates["name"] = *data.Name
	}

	if data.Email != nil {
		if err := validators.EmailValidator(*data.Email); err != nil {
			response.ValidationError(c, err)
			return
		}

		updates["email"] = *data.Email
	}

	if data.MobileNo != nil {
		updates["mobile_no"] = *data.MobileNo
	}

	if data.Status != nil {
		if err := validators.StatusValidator(data.Status); err != nil {
			response.ValidationError(c, err)
			return
		}

		updates["status"] = *data.Status
	}

	if len(updates) > 0 {
		err = a.DB.Model(&customer).Updates(updates).Error
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update customer")

			zap.L().Error("Failed to update customer", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	response.OK(c, "Customer Updated Successfully", newCustomerResource(&customer))
}
