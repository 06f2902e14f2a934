package shared

import (
	"context"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/cart"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/coupon"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/pricing"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/reservation"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/user"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Carts() CartRepository
	Stock() StockRepository
	Reservations() ReservationRepository
	Coupons() CouponRepository
	CheckoutSessions() CheckoutSessionRepository
	Orders() OrderRepository
	Rates() RateRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are lookups a command needs before or outside its transaction.
type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	CheckoutSession(ctx context.Context, userID uuid.UUID, idempotencyKey string) (*CheckoutSessionSnapshot, error)
	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, tx sqlc.DBTX, email string) (*user.User, error)
}

type CartRepository interface {
	// FindForCheckout loads the user's cart, falling back to the session cart.
	FindForCheckout(ctx context.Context, tx sqlc.DBTX, userID *uuid.UUID, sessionID string) (*cart.Cart, error)
	ClearItems(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error
}

type StockRepository interface {
	// Lock takes a row lock on the SKU's stock row and returns on-hand stock.
	Lock(ctx context.Context, tx sqlc.DBTX, sku reservation.SKU) (int, error)
	// Decrement reports false when stock would go negative.
	Decrement(ctx context.Context, tx sqlc.DBTX, sku reservation.SKU, quantity int) (bool, error)
}

type ReservationRepository interface {
	ActiveReservedQuantity(ctx context.Context, tx sqlc.DBTX, sku reservation.SKU, now time.Time) (int, error)
	CreateBatch(ctx context.Context, tx sqlc.DBTX, rs []*reservation.StockReservation) error
	AttachOrder(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID, orderID uuid.UUID) error
	MarkCommitted(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error)
	Release(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error)
	ListExpired(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*reservation.StockReservation, error)
	ListByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) ([]*reservation.StockReservation, error)
}

type CouponRepository interface {
	LockByCode(ctx context.Context, tx sqlc.DBTX, code string) (*coupon.Coupon, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*coupon.Coupon, error)
	// IncrementUsage reports false when the usage limit was already reached.
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	DecrementUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	HasRedemption(ctx context.Context, tx sqlc.DBTX, couponID, userID uuid.UUID) (bool, error)
	CreateRedemption(ctx context.Context, tx sqlc.DBTX, couponID, userID uuid.UUID, orderID *uuid.UUID, singleUse bool) (uuid.UUID, error)
	FinalizeRedemption(ctx context.Context, tx sqlc.DBTX, redemptionID, orderID uuid.UUID) error
	DeleteRedemption(ctx context.Context, tx sqlc.DBTX, couponID, orderID uuid.UUID) (int64, error)
}

type CheckoutSessionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, idempotencyKey string) (uuid.UUID, error)
	Find(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, idempotencyKey string) (*CheckoutSessionSnapshot, error)
	Complete(ctx context.Context, tx sqlc.DBTX, sessionID, orderID uuid.UUID, totalCents int64) error
	SetPaymentIntent(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, intentID string, totalCents int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	LockByPaymentIntent(ctx context.Context, tx sqlc.DBTX, intentID string) (*order.Order, error)
	Save(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
}

type RateRepository interface {
	ShippingRates(ctx context.Context, tx sqlc.DBTX, region string) ([]pricing.ShippingRate, error)
	TaxRate(ctx context.Context, tx sqlc.DBTX, region string) (pricing.TaxRate, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}
