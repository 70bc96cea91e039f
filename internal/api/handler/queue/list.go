package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListWaiting godoc
// @Summary      List waiting customers
// @Description  All waiting entries for a business ordered by position, with wait estimates
// @Tags         Queue
// @Produce      json
// @Param        business_id path string true "Business ID"
// @Success      200 {object} map[string]interface{} "Waiting entries and count"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /v1/queue/list/{business_id} [get]
func (h *QueueHandler) ListWaiting(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business id"})
		return
	}

	waiting, err := h.queueService.ListWaiting(c, businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch queue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"queue":         waiting,
		"total_waiting": len(waiting),
	})
}
