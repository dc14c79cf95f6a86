package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

const (
	opTimeout = 5 * time.Second

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type orderStore struct {
	db *gorm.DB
	// inTx выставлен у хранилища, привязанного к открытой транзакции.
	inTx bool
}

// NewOrderStore создаёт PostgreSQL-реализацию OrderStore.
func NewOrderStore(store *Store) domain.OrderStore {
	return &orderStore{db: store.Gorm()}
}

func (s *orderStore) WithinTx(ctx context.Context, fn func(tx domain.OrderTx) error) error {
	if s.inTx {
		return fn(s)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderStore{db: tx, inTx: true})
	})
}

func (s *orderStore) FindByID(ctx context.Context, id string) (domain.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var row orderRow
	err = s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, product_id ASC")
		}).
		Where("id = ?", orderID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	return row.toDomain(), nil
}

// Query строит выборку по заказам с LEFT JOIN на живые позиции. Условие по
// сумме заказа применяется один раз в HAVING после группировки по заказу.
func (s *orderStore) Query(ctx context.Context, f domain.OrderFilter) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	q := s.db.WithContext(ctx).
		Table("orders AS o").
		Joins("LEFT JOIN order_items AS i ON i.order_id = o.id AND i.deleted_at IS NULL").
		Where("o.deleted_at IS NULL")

	if f.PhoneNumber != "" {
		q = q.Where("o.phone_number = ?", f.PhoneNumber)
	}
	if f.Status != "" {
		q = q.Where("o.status = ?", string(f.Status))
	}
	if f.Email != "" {
		q = q.Where("o.email ILIKE ?", containsPattern(f.Email))
	}
	if f.CustomerName != "" {
		q = q.Where("o.customer_name ILIKE ?", containsPattern(f.CustomerName))
	}
	if f.Address != "" {
		q = q.Where("o.address ILIKE ?", containsPattern(f.Address))
	}
	if f.FromDate != nil {
		q = q.Where("o.created_at >= ?", f.FromDate.UTC())
	}
	if f.ToDate != nil {
		q = q.Where("o.created_at <= ?", f.ToDate.UTC())
	}

	q = q.Group("o.id, o.created_at")

	const orderTotal = "COALESCE(SUM(i.quantity * i.price), 0)"
	switch {
	case f.MinTotal != nil && f.MaxTotal != nil:
		q = q.Having(orderTotal+" BETWEEN ? AND ?", *f.MinTotal, *f.MaxTotal)
	case f.MinTotal != nil:
		q = q.Having(orderTotal+" >= ?", *f.MinTotal)
	case f.MaxTotal != nil:
		q = q.Having(orderTotal+" <= ?", *f.MaxTotal)
	}

	var ids []string
	if err := q.Order("o.created_at DESC, o.id DESC").Pluck("o.id", &ids).Error; err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *orderStore) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := s.db.NowFunc()
	row := orderRow{
		ID:           uuid.New(),
		PhoneNumber:  order.PhoneNumber,
		Email:        order.Email,
		CustomerName: order.CustomerName,
		Address:      order.Address,
		Status:       string(domain.OrderStatusConfirmed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.db.WithContext(ctx).Omit("Items").Create(&row).Error; err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	return row.toDomain(), nil
}

func (s *orderStore) SaveItems(ctx context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	if len(items) == 0 {
		return []domain.OrderItem{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := s.db.NowFunc()
	rows := make([]orderItemRow, 0, len(items))
	for _, item := range items {
		orderID, err := uuid.Parse(item.OrderID)
		if err != nil {
			return nil, fmt.Errorf("save order item %s: %w", item.ProductID, domain.ErrOrderNotFound)
		}
		rows = append(rows, orderItemRow{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, fmt.Errorf("%w: %v", domain.ErrDuplicateProductID, err)
		case pgForeignKeyViolation:
			return nil, fmt.Errorf("insert order items: %w", domain.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("insert order items: %w", err)
	}

	saved := make([]domain.OrderItem, 0, len(rows))
	for _, row := range rows {
		saved = append(saved, row.toDomain())
	}
	return saved, nil
}

func (s *orderStore) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (time.Time, error) {
	if !status.Valid() {
		return time.Time{}, domain.ErrStatusNotFound
	}
	orderID, err := uuid.Parse(id)
	if err != nil {
		return time.Time{}, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := s.db.NowFunc()
	res := s.db.WithContext(ctx).
		Model(&orderRow{}).
		Where("id = ?", orderID).
		UpdateColumns(map[string]any{"status": string(status), "updated_at": now})
	if res.Error != nil {
		return time.Time{}, fmt.Errorf("update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return time.Time{}, domain.ErrOrderNotFound
	}

	return now, nil
}

func (s *orderStore) SoftDelete(ctx context.Context, id string) (time.Time, time.Time, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := s.db.NowFunc()
	res := s.db.WithContext(ctx).
		Model(&orderRow{}).
		Where("id = ?", orderID).
		UpdateColumns(map[string]any{"deleted_at": now, "updated_at": now})
	if res.Error != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("soft delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return time.Time{}, time.Time{}, domain.ErrOrderNotFound
	}

	return now, now, nil
}

// SoftDeleteItems помечает позиции удалёнными по одной, чтобы обнаружить
// отсутствующую строку по RowsAffected.
func (s *orderStore) SoftDeleteItems(ctx context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := s.db.NowFunc()
	deleted := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		orderID, err := uuid.Parse(item.OrderID)
		if err != nil {
			return nil, fmt.Errorf("%w: order %s", domain.ErrItemDeleteFailed, item.OrderID)
		}

		res := s.db.WithContext(ctx).
			Model(&orderItemRow{}).
			Where("order_id = ? AND product_id = ?", orderID, item.ProductID).
			UpdateColumns(map[string]any{"deleted_at": now, "updated_at": now})
		if res.Error != nil {
			return nil, fmt.Errorf("%w: product %s: %v", domain.ErrItemDeleteFailed, item.ProductID, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("%w: product %s", domain.ErrItemDeleteFailed, item.ProductID)
		}

		deletedAt := now
		item.DeletedAt = &deletedAt
		item.UpdatedAt = now
		deleted = append(deleted, item)
	}

	return deleted, nil
}

func (s *orderStore) Enqueue(ctx context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	id := uuid.New()
	if msg.ID != "" {
		parsed, err := uuid.Parse(msg.ID)
		if err != nil {
			return domain.OutboxMessage{}, fmt.Errorf("outbox message id %q: %w", msg.ID, err)
		}
		id = parsed
	}

	now := s.db.NowFunc()
	row := outboxRow{
		ID:            id,
		AggregateType: msg.AggregateType,
		AggregateID:   msg.AggregateID,
		EventType:     msg.EventType,
		Payload:       msg.Payload,
		Status:        outboxStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("enqueue outbox message: %w", err)
	}

	return row.toDomain(), nil
}

func containsPattern(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(value) + "%"
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

var _ domain.OrderStore = (*orderStore)(nil)
