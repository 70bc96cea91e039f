package business

import (
	"net/http"

	"github.com/Marcelofury/SmartQueue/pkg/paginator"
	"github.com/gin-gonic/gin"
)

// GetAll godoc
// @Summary      List businesses
// @Description  Businesses available to queue at, with pagination
// @Tags         Business
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Number of items per page" default(10)
// @Success      200 {object} map[string]interface{} "Businesses with pagination metadata"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /v1/businesses [get]
func (h *BusinessHandler) GetAll(c *gin.Context) {
	pagination := paginator.New(c)

	businesses, total, err := h.businessService.ListBusinesses(c, pagination.Size, pagination.From)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    businesses,
		"meta": gin.H{
			"page_size": pagination.Size,
			"page":      pagination.Page,
			"total":     total,
		},
	})
}
