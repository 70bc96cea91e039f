package api

import (
	"net/http"

	"github.com/Marcelofury/SmartQueue/internal/api/handler/business"
	"github.com/Marcelofury/SmartQueue/internal/api/handler/queue"
	"github.com/Marcelofury/SmartQueue/internal/api/handler/ussd"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes
// @title						SmartQueue Service
// @version         			1.0.0
// @description     			Virtual queue management over HTTP and USSD
// @Host 						localhost:8080
// @BasePath  					/
func (s *Server) SetupAPIRoutes(
	queueHandler *queue.QueueHandler,
	businessHandler *business.BusinessHandler,
	ussdHandler *ussd.UssdHandler,
) {
	r := s.engine

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "SmartQueue API is running"})
	})

	v1 := r.Group("v1")
	{
		v1.POST("/queue/join", queueHandler.Join)
		v1.GET("/queue/status/:id", queueHandler.Status)
		v1.POST("/queue/next/:business_id", queueHandler.CallNext)
		v1.POST("/queue/complete/:id", queueHandler.Complete)
		v1.GET("/queue/list/:business_id", queueHandler.ListWaiting)

		v1.GET("/businesses", businessHandler.GetAll)

		v1.POST("/ussd", ussdHandler.Handle)
	}
}
