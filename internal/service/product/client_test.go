package product

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	productv1 "github.com/vladislavdragonenkov/orders/proto/product/v1"
)

func loggerForTests() *log.Entry {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return log.NewEntry(logger)
}

func startCatalogServer(t *testing.T, catalog *Catalog) *Client {
	t.Helper()
	return startProductServer(t, catalog.Server())
}

func startProductServer(t *testing.T, srv productv1.ProductServiceServer) *Client {
	t.Helper()

	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	productv1.RegisterProductServiceServer(server, srv)
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn, loggerForTests())
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Keyboard", Category: "input", Make: "ACME", Price: decimal.RequireFromString("10.00"), Quantity: 5},
		{ID: "p2", Name: "Mouse", Category: "input", Make: "ACME", Price: decimal.RequireFromString("5.00"), Quantity: 1},
	}
}

func TestClient_FindByID(t *testing.T) {
	catalog := NewCatalog(sampleProducts()...)
	client := startCatalogServer(t, catalog)
	ctx := context.Background()

	p, err := client.FindByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Keyboard", p.Name)
	require.True(t, p.Price.Equal(decimal.NewFromInt(10)))

	_, err = client.FindByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	catalog.FailLookup("p2", errors.New("db down"))
	_, err = client.FindByID(ctx, "p2")
	require.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestClient_OrderRequest(t *testing.T) {
	catalog := NewCatalog(sampleProducts()...)
	client := startCatalogServer(t, catalog)
	ctx := context.Background()

	res, err := client.OrderRequest(ctx, []domain.ProductLine{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}})
	require.NoError(t, err)
	require.True(t, res.OK)
	require.Len(t, res.Products, 2)
	require.True(t, res.Products[1].Price.Equal(decimal.NewFromInt(5)))
	require.Equal(t, int32(3), catalog.Stock("p1"))

	res, err = client.OrderRequest(ctx, []domain.ProductLine{{ProductID: "p1", Quantity: 1}, {ProductID: "p2", Quantity: 1}})
	require.NoError(t, err)
	require.False(t, res.OK)
	require.Contains(t, res.Message, "out of stock")
	require.Equal(t, int32(3), catalog.Stock("p1"), "rejected request must not decrement any line")
}

func TestClient_Unavailable(t *testing.T) {
	listener := bufconn.Listen(1024)
	_ = listener.Close()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	client := NewClient(conn, loggerForTests())
	_, err = client.OrderRequest(context.Background(), []domain.ProductLine{{ProductID: "p1", Quantity: 1}})
	require.ErrorIs(t, err, domain.ErrProductUnavailable)
}

// brokenPriceServer отдаёт снимки с нечитаемой ценой.
type brokenPriceServer struct {
	productv1.UnimplementedProductServiceServer
}

func (brokenPriceServer) FindProductById(_ context.Context, req *productv1.FindProductByIdRequest) (*productv1.Product, error) {
	return &productv1.Product{Id: req.GetId(), Price: "n/a"}, nil
}

func (brokenPriceServer) OrderRequest(_ context.Context, req *productv1.OrderRequest) (*productv1.OrderRequestResponse, error) {
	out := &productv1.OrderRequestResponse{Status: productv1.OrderRequestStatus_ORDER_REQUEST_STATUS_SUCCESS}
	for _, p := range req.GetProducts() {
		out.Products = append(out.Products, &productv1.Product{Id: p.GetProductId(), Price: ""})
	}
	return out, nil
}

func TestClient_MalformedPrice(t *testing.T) {
	client := startProductServer(t, brokenPriceServer{})
	ctx := context.Background()

	_, err := client.FindByID(ctx, "p1")
	require.ErrorIs(t, err, domain.ErrProductUnavailable)
	require.Contains(t, err.Error(), "n/a")

	_, err = client.OrderRequest(ctx, []domain.ProductLine{{ProductID: "p1", Quantity: 1}})
	require.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestClient_UnspecifiedStatusIsRejection(t *testing.T) {
	client := startProductServer(t, unspecifiedStatusServer{})

	res, err := client.OrderRequest(context.Background(), []domain.ProductLine{{ProductID: "p1", Quantity: 1}})
	require.NoError(t, err)
	require.False(t, res.OK)
	require.Equal(t, "maintenance", res.Message)
}

type unspecifiedStatusServer struct {
	productv1.UnimplementedProductServiceServer
}

func (unspecifiedStatusServer) OrderRequest(context.Context, *productv1.OrderRequest) (*productv1.OrderRequestResponse, error) {
	return &productv1.OrderRequestResponse{Error: "maintenance"}, nil
}
