package request

type JoinQueueRequest struct {
	BusinessID   string `json:"business_id" binding:"required,uuid"`
	CustomerName string `json:"customer_name" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
}

// UssdRequest is the callback payload Africa's Talking posts on every step
// of a USSD session. Text accumulates the caller's inputs joined by '*'.
type UssdRequest struct {
	SessionID   string `form:"sessionId"`
	ServiceCode string `form:"serviceCode"`
	PhoneNumber string `form:"phoneNumber"`
	Text        string `form:"text"`
}
