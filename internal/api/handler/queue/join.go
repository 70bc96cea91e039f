package queue

import (
	"net/http"

	"github.com/Marcelofury/SmartQueue/internal/api/request"
	"github.com/Marcelofury/SmartQueue/internal/constant"
	queueService "github.com/Marcelofury/SmartQueue/internal/service/queue"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Join godoc
// @Summary      Join a queue
// @Description  Add a customer to the tail of a business's queue
// @Tags         Queue
// @Accept       json
// @Produce      json
// @Param        request body request.JoinQueueRequest true "Join request body"
// @Success      201 {object} map[string]interface{} "Queue entry with estimated wait"
// @Failure      400 {object} map[string]string "Missing or malformed fields"
// @Failure      404 {object} map[string]string "Business not found"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /v1/queue/join [post]
func (h *QueueHandler) Join(c *gin.Context) {
	var req request.JoinQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constant.MissingFieldsErrMsg})
		return
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business_id"})
		return
	}

	result, err := h.queueService.Join(c, queueService.JoinInput{
		BusinessID:   businessID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, constant.MissingFieldsErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, constant.BusinessNotFoundErr):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join queue"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":             "Successfully joined the queue",
		"queue_entry":         result.Entry,
		"estimated_wait_time": result.EstimatedWait,
		"wait_time_unit":      constant.WaitTimeUnit,
	})
}
