package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

type orderRow struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	PhoneNumber  string         `gorm:"column:phone_number"`
	Email        string         `gorm:"column:email"`
	CustomerName string         `gorm:"column:customer_name"`
	Address      string         `gorm:"column:address"`
	Status       string         `gorm:"column:status"`
	Items        []orderItemRow `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (orderRow) TableName() string { return "orders" }

type orderItemRow struct {
	OrderID   uuid.UUID       `gorm:"column:order_id;type:uuid;primaryKey"`
	ProductID string          `gorm:"column:product_id;primaryKey"`
	Quantity  int32           `gorm:"column:quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"column:deleted_at"`
}

func (orderItemRow) TableName() string { return "order_items" }

type outboxRow struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	AggregateType string    `gorm:"column:aggregate_type"`
	AggregateID   string    `gorm:"column:aggregate_id"`
	EventType     string    `gorm:"column:event_type"`
	Payload       []byte    `gorm:"column:payload"`
	Status        string    `gorm:"column:status"`
	AttemptCount  int       `gorm:"column:attempt_count"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (outboxRow) TableName() string { return "outbox_messages" }

func (r orderRow) toDomain() domain.Order {
	order := domain.Order{
		ID:           r.ID.String(),
		PhoneNumber:  r.PhoneNumber,
		Email:        r.Email,
		CustomerName: r.CustomerName,
		Address:      r.Address,
		Status:       domain.OrderStatus(r.Status),
		Timestamps:   timestamps(r.CreatedAt, r.UpdatedAt, r.DeletedAt),
	}
	if len(r.Items) > 0 {
		order.Items = make([]domain.OrderItem, 0, len(r.Items))
		for _, item := range r.Items {
			order.Items = append(order.Items, item.toDomain())
		}
	}
	return order
}

func (r orderItemRow) toDomain() domain.OrderItem {
	return domain.OrderItem{
		OrderID:    r.OrderID.String(),
		ProductID:  r.ProductID,
		Quantity:   r.Quantity,
		Price:      r.Price,
		Timestamps: timestamps(r.CreatedAt, r.UpdatedAt, r.DeletedAt),
	}
}

func (r outboxRow) toDomain() domain.OutboxMessage {
	return domain.OutboxMessage{
		ID:            r.ID.String(),
		AggregateType: r.AggregateType,
		AggregateID:   r.AggregateID,
		EventType:     r.EventType,
		Payload:       r.Payload,
		Attempts:      r.AttemptCount,
		CreatedAt:     r.CreatedAt.UTC(),
	}
}

func timestamps(createdAt, updatedAt time.Time, deletedAt gorm.DeletedAt) domain.Timestamps {
	ts := domain.Timestamps{CreatedAt: createdAt.UTC(), UpdatedAt: updatedAt.UTC()}
	if deletedAt.Valid {
		t := deletedAt.Time.UTC()
		ts.DeletedAt = &t
	}
	return ts
}
