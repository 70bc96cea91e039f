package ussd

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Marcelofury/SmartQueue/internal/api/request"
	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/Marcelofury/SmartQueue/internal/domain"
	queueService "github.com/Marcelofury/SmartQueue/internal/service/queue"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const errorScreen = "END An error occurred. Please try again later."

// Handle godoc
// @Summary      USSD callback
// @Description  Session step for the text-menu front end (join, check position, find business)
// @Tags         USSD
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Success      200 {string} string "CON or END screen"
// @Router       /v1/ussd [post]
func (h *UssdHandler) Handle(c *gin.Context) {
	var req request.UssdRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusOK, errorScreen)
		return
	}

	c.String(http.StatusOK, h.respond(c, req))
}

func (h *UssdHandler) respond(ctx context.Context, req request.UssdRequest) string {
	switch {
	case req.Text == "":
		return "CON Welcome to SmartQueue\n1. Join Queue\n2. Check My Position\n3. Find Business"
	case req.Text == "1":
		return h.businessMenu(ctx)
	case strings.HasPrefix(req.Text, "1*"):
		return h.joinFlow(ctx, req)
	case req.Text == "2":
		return h.positionScreen(ctx, req.PhoneNumber)
	case req.Text == "3":
		return h.businessDirectory(ctx)
	default:
		return "END Invalid option. Please try again."
	}
}

func (h *UssdHandler) businessMenu(ctx context.Context) string {
	businesses, _, err := h.businessService.ListBusinesses(ctx, constant.UssdBusinessPageSize, 0)
	if err != nil {
		return errorScreen
	}
	if len(businesses) == 0 {
		return "END No businesses available at the moment."
	}

	var b strings.Builder
	b.WriteString("CON Select a business:\n")
	for i, business := range businesses {
		fmt.Fprintf(&b, "%d. %s\n", i+1, business.Name)
	}
	return b.String()
}

func (h *UssdHandler) joinFlow(ctx context.Context, req request.UssdRequest) string {
	parts := strings.Split(req.Text, "*")
	switch len(parts) {
	case 2:
		return "CON Enter your name:"
	case 3:
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			return "END Invalid business selection."
		}
		return h.join(ctx, index-1, parts[2], req.PhoneNumber)
	default:
		return "END Invalid option. Please try again."
	}
}

func (h *UssdHandler) join(ctx context.Context, businessIndex int, customerName, phoneNumber string) string {
	// reload the same page the caller picked from so the index still matches
	businesses, _, err := h.businessService.ListBusinesses(ctx, constant.UssdBusinessPageSize, 0)
	if err != nil {
		return errorScreen
	}
	if businessIndex < 0 || businessIndex >= len(businesses) {
		return "END Invalid business selection."
	}
	business := businesses[businessIndex]

	result, err := h.queueService.Join(ctx, queueService.JoinInput{
		BusinessID:   business.ID,
		CustomerName: customerName,
		PhoneNumber:  phoneNumber,
		NotifyJoin:   true,
	})
	if err != nil {
		return errorScreen
	}

	return fmt.Sprintf(
		"END Success! You're #%d at %s. Wait: ~%d min. We'll SMS you when ready.",
		result.Entry.Position, business.Name, result.EstimatedWait,
	)
}

func (h *UssdHandler) positionScreen(ctx context.Context, phoneNumber string) string {
	status, err := h.queueService.ActiveEntryByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, constant.EntryNotFoundErr) {
			return "END You're not in any queue currently."
		}
		return errorScreen
	}

	if status.Entry.Status == domain.StatusServing {
		return fmt.Sprintf("END You're being served at %s. Please proceed to the counter!", status.BusinessName)
	}
	return fmt.Sprintf(
		"END You're #%d at %s. Wait: ~%d min.",
		status.Entry.Position, status.BusinessName, status.EstimatedWait,
	)
}

func (h *UssdHandler) businessDirectory(ctx context.Context) string {
	businesses, _, err := h.businessService.ListBusinesses(ctx, constant.UssdBusinessPageSize, 0)
	if err != nil {
		return errorScreen
	}
	if len(businesses) == 0 {
		return "END No businesses found."
	}

	var b strings.Builder
	b.WriteString("END Available businesses:\n")
	for i, business := range businesses {
		location := business.Location
		if location == "" {
			location = "N/A"
		}
		fmt.Fprintf(&b, "%d. %s\n   Location: %s\n", i+1, business.Name, location)
	}
	return b.String()
}
