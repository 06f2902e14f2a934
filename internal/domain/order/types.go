package order

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending         PaymentStatus = "pending"
	PaymentRequiresAction  PaymentStatus = "requires_action"
	PaymentProcessing      PaymentStatus = "processing"
	PaymentSucceeded       PaymentStatus = "succeeded"
	PaymentFailed          PaymentStatus = "failed"
	PaymentFailedPermanent PaymentStatus = "failed_permanent"
	PaymentRefunded        PaymentStatus = "refunded"
	PaymentCancelled       PaymentStatus = "cancelled"
)

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentRequiresAction, PaymentProcessing, PaymentSucceeded,
		PaymentFailed, PaymentFailedPermanent, PaymentRefunded, PaymentCancelled:
		return true
	default:
		return false
	}
}

// IsPaid reports whether money has been captured and not returned.
func (s PaymentStatus) IsPaid() bool {
	return s == PaymentSucceeded
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	ps := PaymentStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, s)
	}
	return ps, nil
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}
