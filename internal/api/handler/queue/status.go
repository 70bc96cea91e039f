package queue

import (
	"net/http"

	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Status godoc
// @Summary      Queue entry status
// @Description  Current position, lifecycle state and live wait estimate for an entry
// @Tags         Queue
// @Produce      json
// @Param        id path string true "Queue entry ID"
// @Success      200 {object} map[string]interface{} "Entry status"
// @Failure      404 {object} map[string]string "Entry not found"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /v1/queue/status/{id} [get]
func (h *QueueHandler) Status(c *gin.Context) {
	queueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid queue id"})
		return
	}

	status, err := h.queueService.Status(c, queueID)
	if err != nil {
		if errors.Is(err, constant.EntryNotFoundErr) || errors.Is(err, constant.BusinessNotFoundErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": constant.EntryNotFoundErrMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get queue status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"queue_id":            status.Entry.ID,
		"customer_name":       status.Entry.CustomerName,
		"phone_number":        status.Entry.PhoneNumber,
		"position":            status.Entry.Position,
		"status":              status.Entry.Status,
		"business_name":       status.BusinessName,
		"estimated_wait_time": status.EstimatedWait,
		"wait_time_unit":      constant.WaitTimeUnit,
		"created_at":          status.Entry.CreatedAt,
	})
}
