package queue

import (
	"net/http"

	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Complete godoc
// @Summary      Complete service
// @Description  Mark a queue entry as done
// @Tags         Queue
// @Produce      json
// @Param        id path string true "Queue entry ID"
// @Success      200 {object} map[string]interface{} "Completed entry"
// @Failure      404 {object} map[string]string "Entry not found"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /v1/queue/complete/{id} [post]
func (h *QueueHandler) Complete(c *gin.Context) {
	queueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid queue id"})
		return
	}

	entry, err := h.queueService.Complete(c, queueID)
	if err != nil {
		if errors.Is(err, constant.EntryNotFoundErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": constant.EntryNotFoundErrMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Service completed",
		"customer": entry,
	})
}
