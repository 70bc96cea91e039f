package notification

import (
	"context"
	"fmt"
)

func (ns *notificationService) Enabled() bool {
	return ns.provider.Enabled()
}

// SendTurnNotification tells a customer they are up next. Delivery is
// best-effort: the returned error is for the caller's log line only.
func (ns *notificationService) SendTurnNotification(ctx context.Context, phoneNumber, customerName, businessName string) error {
	message := fmt.Sprintf(
		"Hi %s! Your turn is coming up at %s. Please head to the counter. Thank you for using SmartQueue!",
		customerName, businessName,
	)
	return ns.provider.Send(ctx, phoneNumber, message)
}

func (ns *notificationService) SendJoinConfirmation(ctx context.Context, phoneNumber, customerName string, position, estimatedWait int) error {
	message := fmt.Sprintf(
		"Hi %s! You're #%d in line. Estimated wait: %d min. We'll notify you when it's your turn. SmartQueue",
		customerName, position, estimatedWait,
	)
	return ns.provider.Send(ctx, phoneNumber, message)
}
