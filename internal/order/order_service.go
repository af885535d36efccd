package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/savindushenal/menuvibe-api/internal/cart"
	"github.com/savindushenal/menuvibe-api/internal/outbox"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	// Storefront actions, scoped to the caller's session.
	Checkout(ctx context.Context, restaurantID uuid.UUID, sessionID string, req CheckoutRequest) (OrderResponse, error)
	ListBySession(ctx context.Context, restaurantID uuid.UUID, sessionID string, page, limit int32) (ListOrderResponse, error)
	Detail(ctx context.Context, restaurantID, orderID uuid.UUID, sessionID string) (OrderResponse, error)
	Cancel(ctx context.Context, restaurantID, orderID uuid.UUID, sessionID string) error

	// Dashboard actions, scoped to the restaurant in the route. An order id
	// belonging to another restaurant reads as not found.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, status string, page, limit int32) (ListOrderResponse, error)
	UpdateStatus(ctx context.Context, restaurantID, orderID uuid.UUID, nextStatus string) (OrderResponse, error)
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	CartSvc    cart.Service
	Logger     *zap.Logger
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	cartSvc    cart.Service
	validate   *validator.Validate
	logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		cartSvc:    deps.CartSvc,
		validate:   validator.New(),
		logger:     deps.Logger.Named("order"),
	}
}

func newOrderNumber() string {
	return fmt.Sprintf("MV-%d-%s", time.Now().Unix(), strings.ToUpper(uuid.New().String()[:4]))
}

func (s *service) Checkout(ctx context.Context, restaurantID uuid.UUID, sessionID string, req CheckoutRequest) (OrderResponse, error) {
	logger := s.logger.With(
		zap.String("restaurant_id", restaurantID.String()),
		zap.String("session_id", sessionID))

	if err := s.validate.Struct(req); err != nil {
		return OrderResponse{}, ErrInvalidPayload
	}

	// Pricing happens here, against the current catalog. The session cart is
	// not written until the order commits, so a failure below leaves it
	// intact.
	payload, err := s.cartSvc.Payload(ctx, restaurantID, sessionID)
	if err != nil {
		logger.Error("failed to price cart for checkout", zap.Error(err))
		return OrderResponse{}, err
	}
	if len(payload.Lines) == 0 {
		return OrderResponse{}, ErrCartEmpty
	}

	orderNumber := newOrderNumber()
	logger = logger.With(zap.String("order_number", orderNumber))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
			logger.Warn("checkout transaction rolled back")
		}
	}()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.CreateOrder(ctx, Order{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		OrderNumber:  orderNumber,
		SessionID:    sessionID,
		Status:       StatusPending,
		CustomerName: nullString(req.CustomerName),
		Note:         nullString(req.Note),
		Total:        payload.Total,
	})
	if err != nil {
		logger.Error("failed to create order record", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	items := make([]OrderItem, 0, len(payload.Lines))
	for _, line := range payload.Lines {
		itemID, err := uuid.Parse(line.ItemID)
		if err != nil {
			logger.Error("cart line carries malformed item id", zap.String("item_id", line.ItemID))
			return OrderResponse{}, ErrOrderFailed
		}

		item := OrderItem{
			ID:             uuid.New(),
			OrderID:        o.ID,
			ItemID:         itemID,
			NameSnapshot:   line.Name,
			Variation:      nullString(line.SelectedVariation),
			Customizations: line.SelectedCustomizations,
			UnitPrice:      line.UnitPrice,
			Quantity:       int32(line.Quantity),
			TotalPrice:     line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
		}
		if err := qtx.CreateOrderItem(ctx, item); err != nil {
			logger.Error("failed to create order item", zap.String("item_id", line.ItemID), zap.Error(err))
			return OrderResponse{}, ErrOrderFailed
		}
		items = append(items, item)
	}

	eventPayload, _ := json.Marshal(map[string]string{
		"restaurant_id": restaurantID.String(),
		"session_id":    sessionID,
		"order_id":      o.ID.String(),
	})

	err = s.outboxRepo.WithTx(tx).CreateEvent(ctx, outbox.Event{
		ID:            uuid.New(),
		AggregateType: "ORDER",
		AggregateID:   o.ID,
		EventType:     "CLEAR_CART",
		Payload:       eventPayload,
	})
	if err != nil {
		logger.Error("failed to create outbox event", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit checkout", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}
	committed = true

	// Clear inline so the storefront sees an empty cart on the very next
	// read. The CLEAR_CART outbox event still fires in case this fails.
	if err := s.cartSvc.Clear(ctx, restaurantID, sessionID); err != nil {
		logger.Warn("failed to clear cart after checkout", zap.Error(err))
	}

	logger.Info("checkout success", zap.String("order_id", o.ID.String()))

	return mapOrderToResponse(o, items), nil
}

func (s *service) ListBySession(ctx context.Context, restaurantID uuid.UUID, sessionID string, page, limit int32) (ListOrderResponse, error) {
	page, limit = normalizePage(page, limit)

	orders, total, err := s.repo.ListBySession(ctx, restaurantID, sessionID, limit, (page-1)*limit)
	if err != nil {
		return ListOrderResponse{}, ErrOrderFailed
	}
	return mapOrderList(orders, total, page, limit), nil
}

func (s *service) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, status string, page, limit int32) (ListOrderResponse, error) {
	page, limit = normalizePage(page, limit)

	var statusArg sql.NullString
	if status != "" {
		statusArg = sql.NullString{String: strings.ToUpper(status), Valid: true}
	}

	orders, total, err := s.repo.ListByRestaurant(ctx, restaurantID, statusArg, limit, (page-1)*limit)
	if err != nil {
		return ListOrderResponse{}, ErrOrderFailed
	}
	return mapOrderList(orders, total, page, limit), nil
}

func (s *service) Detail(ctx context.Context, restaurantID, orderID uuid.UUID, sessionID string) (OrderResponse, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, ErrOrderNotFound
		}
		return OrderResponse{}, ErrOrderFailed
	}
	if o.RestaurantID != restaurantID {
		return OrderResponse{}, ErrOrderNotFound
	}

	// Dashboard callers pass an empty session and may read any order of
	// their restaurant.
	if sessionID != "" && o.SessionID != sessionID {
		return OrderResponse{}, ErrNotOrderOwner
	}

	items, err := s.repo.GetItems(ctx, orderID)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	return mapOrderToResponse(o, items), nil
}

func (s *service) Cancel(ctx context.Context, restaurantID, orderID uuid.UUID, sessionID string) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		return ErrOrderFailed
	}
	if o.RestaurantID != restaurantID {
		return ErrOrderNotFound
	}

	if o.SessionID != sessionID {
		return ErrNotOrderOwner
	}
	if o.Status != StatusPending {
		return ErrCannotCancel
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrOrderFailed
	}
	defer tx.Rollback()

	if _, err := s.repo.WithTx(tx).UpdateStatus(ctx, orderID, StatusCancelled); err != nil {
		return ErrOrderFailed
	}

	if err := tx.Commit(); err != nil {
		return ErrOrderFailed
	}
	return nil
}

func (s *service) UpdateStatus(ctx context.Context, restaurantID, orderID uuid.UUID, nextStatus string) (OrderResponse, error) {
	nextStatus = strings.ToUpper(strings.TrimSpace(nextStatus))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, ErrOrderNotFound
		}
		return OrderResponse{}, ErrOrderFailed
	}
	if o.RestaurantID != restaurantID {
		return OrderResponse{}, ErrOrderNotFound
	}

	allowed, ok := statusTransitions[o.Status]
	if !ok {
		return OrderResponse{}, ErrInvalidStatusTransition
	}
	if _, ok := allowed[nextStatus]; !ok {
		return OrderResponse{}, ErrInvalidStatusTransition
	}

	updated, err := qtx.UpdateStatus(ctx, orderID, nextStatus)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	if err := tx.Commit(); err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	return mapOrderToResponse(updated, nil), nil
}

func mapOrderList(orders []Order, total int64, page, limit int32) ListOrderResponse {
	res := ListOrderResponse{
		Orders: make([]OrderResponse, 0, len(orders)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, mapOrderToResponse(o, nil))
	}
	return res
}

func normalizePage(page, limit int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func nullString(v string) sql.NullString {
	v = strings.TrimSpace(v)
	return sql.NullString{String: v, Valid: v != ""}
}
