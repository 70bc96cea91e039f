package constant

import "github.com/pkg/errors"

const (
	BusinessNotFoundErrMsg = "business not found"
	EntryNotFoundErrMsg    = "queue entry not found"
	EmptyQueueErrMsg       = "no customers in queue"
	MissingFieldsErrMsg    = "business_id, customer_name and phone_number are required"
)

var (
	BusinessNotFoundErr = errors.New(BusinessNotFoundErrMsg)
	EntryNotFoundErr    = errors.New(EntryNotFoundErrMsg)
	EmptyQueueErr       = errors.New(EmptyQueueErrMsg)
	MissingFieldsErr    = errors.New(MissingFieldsErrMsg)
)
