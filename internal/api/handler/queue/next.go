package queue

import (
	"net/http"

	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CallNext godoc
// @Summary      Call next customer
// @Description  Move the first waiting customer to serving and renumber the rest
// @Tags         Queue
// @Produce      json
// @Param        business_id path string true "Business ID"
// @Success      200 {object} map[string]interface{} "Called customer"
// @Failure      404 {object} map[string]string "No customers in queue"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /v1/queue/next/{business_id} [post]
func (h *QueueHandler) CallNext(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business id"})
		return
	}

	result, err := h.queueService.CallNext(c, businessID)
	if err != nil {
		switch {
		case errors.Is(err, constant.EmptyQueueErr):
			c.JSON(http.StatusNotFound, gin.H{"error": constant.EmptyQueueErrMsg})
		case errors.Is(err, constant.BusinessNotFoundErr):
			c.JSON(http.StatusNotFound, gin.H{"error": constant.BusinessNotFoundErrMsg})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to call next customer"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Next customer called",
		"customer": result.Entry,
		"sms_sent": result.SmsSent,
	})
}
