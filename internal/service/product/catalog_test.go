package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

func TestCatalog_OrderRequestUnknownProduct(t *testing.T) {
	catalog := NewCatalog(sampleProducts()...)

	res, err := catalog.OrderRequest(context.Background(), []domain.ProductLine{{ProductID: "p1", Quantity: 1}, {ProductID: "ghost", Quantity: 1}})
	require.NoError(t, err)
	require.False(t, res.OK)
	require.Contains(t, res.Message, "ghost")
	require.Equal(t, int32(5), catalog.Stock("p1"))
	require.Equal(t, 1, catalog.RequestCalls)
}

func TestCatalog_PutReplacesSnapshot(t *testing.T) {
	catalog := NewCatalog(sampleProducts()...)
	p := sampleProducts()[0]
	p.Name = "Keyboard v2"
	catalog.Put(p)

	got, err := catalog.FindByID(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "Keyboard v2", got.Name)
	require.Equal(t, 1, catalog.FindCalls)
}
