package orders_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
)

// faultyStore внедряет сбои поверх memory.Store.
type faultyStore struct {
	*memory.Store

	saveItemsErr   error
	deleteItemsErr error

	// deleteBeforeLoad удаляется сразу после выполнения Query.
	deleteBeforeLoad string
}

func (s *faultyStore) Query(ctx context.Context, filter domain.OrderFilter) ([]string, error) {
	ids, err := s.Store.Query(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.deleteBeforeLoad != "" {
		if _, _, err := s.Store.SoftDelete(ctx, s.deleteBeforeLoad); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (s *faultyStore) WithinTx(ctx context.Context, fn func(tx domain.OrderTx) error) error {
	return s.Store.WithinTx(ctx, func(tx domain.OrderTx) error {
		return fn(faultyTx{OrderTx: tx, store: s})
	})
}

type faultyTx struct {
	domain.OrderTx
	store *faultyStore
}

func (tx faultyTx) SaveItems(ctx context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	if tx.store.saveItemsErr != nil {
		return nil, tx.store.saveItemsErr
	}
	return tx.OrderTx.SaveItems(ctx, items)
}

func (tx faultyTx) SoftDeleteItems(ctx context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	if tx.store.deleteItemsErr != nil {
		return nil, tx.store.deleteItemsErr
	}
	return tx.OrderTx.SoftDeleteItems(ctx, items)
}

// counterValue возвращает значение счётчика из реестра; отсутствующий счётчик равен нулю.
func counterValue(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		var total float64
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}
