package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// dataset — снимок состояния хранилища. Транзакция работает с копией и
// подменяет ею текущий снимок при коммите.
type dataset struct {
	orders map[string]domain.Order
	outbox map[string]*outboxRecord
}

func newDataset() *dataset {
	return &dataset{
		orders: make(map[string]domain.Order),
		outbox: make(map[string]*outboxRecord),
	}
}

func (d *dataset) clone() *dataset {
	cp := &dataset{
		orders: make(map[string]domain.Order, len(d.orders)),
		outbox: make(map[string]*outboxRecord, len(d.outbox)),
	}
	for id, order := range d.orders {
		cp.orders[id] = copyOrder(order)
	}
	for id, rec := range d.outbox {
		r := *rec
		cp.outbox[id] = &r
	}
	return cp
}

// Store — in-memory реализация OrderStore и OutboxRepository для локальной разработки и тестов.
type Store struct {
	// writeMu сериализует изменения, mu защищает указатель на текущий снимок.
	writeMu sync.Mutex
	mu      sync.RWMutex
	data    *dataset
	now     func() time.Time
}

// StoreOption настраивает Store.
type StoreOption func(*Store)

// WithClock задаёт источник времени для меток created/updated/deleted.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore создаёт пустое хранилище.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		data: newDataset(),
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithinTx выполняет fn над копией данных и применяет её только при успехе fn.
//
// Транзакции сериализуются: writeMu держится всё время выполнения fn, включая
// внешние вызовы внутри неё (например, резервирование товаров в product-сервисе).
// Медленный fn задерживает остальные записи, но не чтения: FindByID и Query
// работают с последним закоммиченным снимком.
func (s *Store) WithinTx(ctx context.Context, fn func(tx domain.OrderTx) error) error {
	return s.mutate(ctx, func(v *txView) error {
		return fn(v)
	})
}

func (s *Store) mutate(ctx context.Context, fn func(v *txView) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	working := s.data.clone()
	s.mu.RUnlock()

	if err := fn(&txView{data: working, now: s.now}); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = working
	s.mu.Unlock()
	return nil
}

// FindByID возвращает неудалённый заказ с неудалёнными позициями.
func (s *Store) FindByID(ctx context.Context, id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&txView{data: s.data, now: s.now}).FindByID(ctx, id)
}

// Query возвращает ID заказов, подходящих под фильтр.
func (s *Store) Query(_ context.Context, filter domain.OrderFilter) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type match struct {
		id        string
		createdAt time.Time
	}

	matches := make([]match, 0)
	for _, order := range s.data.orders {
		if order.Deleted() || !matchesFilter(order, filter) {
			continue
		}
		matches = append(matches, match{id: order.ID, createdAt: order.CreatedAt})
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].createdAt.Equal(matches[j].createdAt) {
			return matches[i].createdAt.After(matches[j].createdAt)
		}
		return matches[i].id > matches[j].id
	})

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.id)
	}
	return ids, nil
}

func (s *Store) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	var created domain.Order
	err := s.WithinTx(ctx, func(tx domain.OrderTx) error {
		var err error
		created, err = tx.Create(ctx, order)
		return err
	})
	return created, err
}

func (s *Store) SaveItems(ctx context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	var saved []domain.OrderItem
	err := s.WithinTx(ctx, func(tx domain.OrderTx) error {
		var err error
		saved, err = tx.SaveItems(ctx, items)
		return err
	})
	return saved, err
}

func (s *Store) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (time.Time, error) {
	var updatedAt time.Time
	err := s.WithinTx(ctx, func(tx domain.OrderTx) error {
		var err error
		updatedAt, err = tx.UpdateStatus(ctx, id, status)
		return err
	})
	return updatedAt, err
}

func (s *Store) SoftDelete(ctx context.Context, id string) (time.Time, time.Time, error) {
	var deletedAt, updatedAt time.Time
	err := s.WithinTx(ctx, func(tx domain.OrderTx) error {
		var err error
		deletedAt, updatedAt, err = tx.SoftDelete(ctx, id)
		return err
	})
	return deletedAt, updatedAt, err
}

func (s *Store) SoftDeleteItems(ctx context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	var deleted []domain.OrderItem
	err := s.WithinTx(ctx, func(tx domain.OrderTx) error {
		var err error
		deleted, err = tx.SoftDeleteItems(ctx, items)
		return err
	})
	return deleted, err
}

func (s *Store) Enqueue(ctx context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	var stored domain.OutboxMessage
	err := s.WithinTx(ctx, func(tx domain.OrderTx) error {
		var err error
		stored, err = tx.Enqueue(ctx, msg)
		return err
	})
	return stored, err
}

// txView выполняет операции над снимком без блокировок: снимок принадлежит одной транзакции.
type txView struct {
	data *dataset
	now  func() time.Time
}

func (v *txView) FindByID(_ context.Context, id string) (domain.Order, error) {
	order, ok := v.data.orders[id]
	if !ok || order.Deleted() {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	out := copyOrder(order)
	out.Items = out.Items[:0]
	for _, item := range order.Items {
		if item.Deleted() {
			continue
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (v *txView) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	now := v.now()
	order.ID = uuid.NewString()
	order.Status = domain.OrderStatusConfirmed
	order.Items = nil
	order.Timestamps = domain.Timestamps{CreatedAt: now, UpdatedAt: now}

	v.data.orders[order.ID] = order
	return copyOrder(order), nil
}

func (v *txView) SaveItems(_ context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	now := v.now()
	saved := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		order, ok := v.data.orders[item.OrderID]
		if !ok {
			return nil, fmt.Errorf("save order item %s: %w", item.ProductID, domain.ErrOrderNotFound)
		}
		for _, existing := range order.Items {
			if existing.ProductID == item.ProductID {
				return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateProductID, item.ProductID)
			}
		}

		item.Product = nil
		item.Timestamps = domain.Timestamps{CreatedAt: now, UpdatedAt: now}
		order.Items = append(order.Items, item)
		v.data.orders[item.OrderID] = order
		saved = append(saved, item)
	}
	return saved, nil
}

func (v *txView) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (time.Time, error) {
	if !status.Valid() {
		return time.Time{}, domain.ErrStatusNotFound
	}
	order, ok := v.data.orders[id]
	if !ok || order.Deleted() {
		return time.Time{}, domain.ErrOrderNotFound
	}

	now := v.now()
	order.Status = status
	order.UpdatedAt = now
	v.data.orders[id] = order
	return now, nil
}

func (v *txView) SoftDelete(_ context.Context, id string) (time.Time, time.Time, error) {
	order, ok := v.data.orders[id]
	if !ok || order.Deleted() {
		return time.Time{}, time.Time{}, domain.ErrOrderNotFound
	}

	now := v.now()
	deletedAt := now
	order.DeletedAt = &deletedAt
	order.UpdatedAt = now
	v.data.orders[id] = order
	return now, now, nil
}

func (v *txView) SoftDeleteItems(_ context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	now := v.now()
	deleted := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		order, ok := v.data.orders[item.OrderID]
		if !ok {
			return nil, fmt.Errorf("%w: order %s", domain.ErrItemDeleteFailed, item.OrderID)
		}

		idx := -1
		for i, existing := range order.Items {
			if existing.ProductID == item.ProductID && !existing.Deleted() {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: product %s", domain.ErrItemDeleteFailed, item.ProductID)
		}

		deletedAt := now
		order.Items[idx].DeletedAt = &deletedAt
		order.Items[idx].UpdatedAt = now
		v.data.orders[item.OrderID] = order

		item.DeletedAt = &deletedAt
		item.UpdatedAt = now
		deleted = append(deleted, item)
	}
	return deleted, nil
}

func (v *txView) Enqueue(_ context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.CreatedAt = v.now()
	v.data.outbox[msg.ID] = &outboxRecord{
		msg:       msg,
		status:    outboxStatusPending,
		updatedAt: msg.CreatedAt,
	}
	return msg, nil
}

func matchesFilter(order domain.Order, f domain.OrderFilter) bool {
	if f.PhoneNumber != "" && order.PhoneNumber != f.PhoneNumber {
		return false
	}
	if f.Status != "" && order.Status != f.Status {
		return false
	}
	if !containsFold(order.Email, f.Email) ||
		!containsFold(order.CustomerName, f.CustomerName) ||
		!containsFold(order.Address, f.Address) {
		return false
	}
	if f.FromDate != nil && order.CreatedAt.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && order.CreatedAt.After(*f.ToDate) {
		return false
	}
	if f.HasTotalRange() {
		total := decimal.Zero
		for _, item := range order.Items {
			if item.Deleted() {
				continue
			}
			total = total.Add(item.LineTotal())
		}
		return f.MatchesTotal(total)
	}
	return true
}

func containsFold(value, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}

func copyOrder(order domain.Order) domain.Order {
	if order.Items != nil {
		order.Items = append([]domain.OrderItem(nil), order.Items...)
	}
	return order
}

var _ domain.OrderStore = (*Store)(nil)
