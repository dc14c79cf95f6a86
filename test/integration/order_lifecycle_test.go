package integration

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	grpcsvc "github.com/vladislavdragonenkov/orders/internal/service/grpc"
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
	"github.com/vladislavdragonenkov/orders/internal/service/product"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
	productv1 "github.com/vladislavdragonenkov/orders/proto/product/v1"
)

const bufSize = 1024 * 1024

// OrderLifecycleTestSuite гоняет сервис заказов и каталог товаров через настоящий gRPC.
type OrderLifecycleTestSuite struct {
	suite.Suite
	catalog *product.Catalog
	store   *memory.Store
	client  ordersv1.OrderServiceClient
	closers []func()
}

func (s *OrderLifecycleTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel)
	logger := baseLogger.WithField("component", "integration-test")

	s.catalog = product.NewCatalog(
		domain.Product{ID: "p-1", Name: "Keyboard", Price: decimal.NewFromInt(10), Quantity: 100},
		domain.Product{ID: "p-2", Name: "Mouse", Price: decimal.NewFromInt(5), Quantity: 100},
		domain.Product{ID: "p-3", Name: "Cable", Price: decimal.NewFromInt(5), Quantity: 100},
	)
	s.store = memory.NewStore()

	productServer := grpc.NewServer()
	productv1.RegisterProductServiceServer(productServer, s.catalog.Server())
	productConn := s.serve(productServer)

	aggregate := orders.NewService(s.store, product.NewClient(productConn, logger), orders.WithLogger(logger))
	orderServer := grpc.NewServer()
	ordersv1.RegisterOrderServiceServer(orderServer, grpcsvc.NewOrderService(aggregate, logger))
	s.client = ordersv1.NewOrderServiceClient(s.serve(orderServer))
}

func (s *OrderLifecycleTestSuite) TearDownTest() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

func (s *OrderLifecycleTestSuite) serve(server *grpc.Server) *grpc.ClientConn {
	listener := bufconn.Listen(bufSize)
	go func() {
		_ = server.Serve(listener)
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}
	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(s.T(), err)

	s.closers = append(s.closers, server.Stop, func() { _ = conn.Close() })
	return conn
}

func (s *OrderLifecycleTestSuite) create(ctx context.Context, lines ...*ordersv1.OrderProduct) *ordersv1.OrderResponse {
	resp, err := s.client.CreateOrder(ctx, &ordersv1.CreateOrderRequest{
		PhoneNumber:   "+70000000000",
		Email:         "buyer@example.com",
		CustomerName:  "Ivan Petrov",
		Address:       "Moscow",
		OrderProducts: lines,
	})
	require.NoError(s.T(), err)
	return resp
}

func (s *OrderLifecycleTestSuite) TestCreateAndFindKeepsSnapshotPrices() {
	ctx := context.Background()

	created := s.create(ctx,
		&ordersv1.OrderProduct{ProductId: "p-1", Quantity: 2},
		&ordersv1.OrderProduct{ProductId: "p-2", Quantity: 1},
	)
	require.Equal(s.T(), ordersv1.CodeOK, created.Code)
	require.Equal(s.T(), ordersv1.MessageSuccess, created.Message)
	require.Equal(s.T(), string(domain.OrderStatusConfirmed), created.Order.Status)
	require.True(s.T(), decimal.NewFromInt(25).Equal(decimal.RequireFromString(created.Order.Total)))
	require.Equal(s.T(), int32(98), s.catalog.Stock("p-1"))

	// Цена в каталоге меняется, цена в заказе остаётся прежней.
	s.catalog.Put(domain.Product{ID: "p-1", Name: "Keyboard", Price: decimal.NewFromInt(99), Quantity: 98})

	found, err := s.client.FindOrderById(ctx, &ordersv1.OrderIdRequest{Id: created.Order.Id})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeOK, found.Code)
	require.Len(s.T(), found.Order.OrderItems, 2)
	require.True(s.T(), decimal.NewFromInt(25).Equal(decimal.RequireFromString(found.Order.Total)))

	prices := map[string]decimal.Decimal{}
	for _, item := range found.Order.OrderItems {
		require.NotNil(s.T(), item.Product)
		prices[item.ProductId] = decimal.RequireFromString(item.Price)
	}
	require.True(s.T(), decimal.NewFromInt(10).Equal(prices["p-1"]))
	require.True(s.T(), decimal.NewFromInt(5).Equal(prices["p-2"]))
}

func (s *OrderLifecycleTestSuite) TestDuplicateProductIsConflict() {
	resp := s.create(context.Background(),
		&ordersv1.OrderProduct{ProductId: "p-1", Quantity: 1},
		&ordersv1.OrderProduct{ProductId: "p-1", Quantity: 2},
	)

	require.Equal(s.T(), ordersv1.CodeConflict, resp.Code)
	require.Equal(s.T(), "Duplicated product id: p-1", resp.Message)
	require.Nil(s.T(), resp.Order)
	require.Zero(s.T(), s.catalog.RequestCalls)
}

func (s *OrderLifecycleTestSuite) TestRejectedRequestPersistsNothing() {
	ctx := context.Background()

	resp := s.create(ctx,
		&ordersv1.OrderProduct{ProductId: "p-1", Quantity: 1},
		&ordersv1.OrderProduct{ProductId: "p-2", Quantity: 1000},
	)
	require.Equal(s.T(), ordersv1.CodeBadRequest, resp.Code)
	require.Contains(s.T(), resp.Message, "out of stock")
	require.Equal(s.T(), int32(100), s.catalog.Stock("p-1"))

	all, err := s.client.FindOrderWithFilter(ctx, &ordersv1.OrderFilterRequest{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeOK, all.Code)
	require.Empty(s.T(), all.Orders)
}

func (s *OrderLifecycleTestSuite) TestStatusUpdates() {
	ctx := context.Background()
	id := s.create(ctx, &ordersv1.OrderProduct{ProductId: "p-1", Quantity: 1}).Order.Id

	same, err := s.client.UpdateOrderStatus(ctx, &ordersv1.UpdateOrderStatusRequest{OrderId: id, Status: "Confirmed"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeConflict, same.Code)
	require.Equal(s.T(), "Duplicate order status", same.Message)

	unknown, err := s.client.UpdateOrderStatus(ctx, &ordersv1.UpdateOrderStatusRequest{OrderId: id, Status: "Lost"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeBadRequest, unknown.Code)
	require.Equal(s.T(), "Order status does not exist", unknown.Message)

	shipped, err := s.client.UpdateOrderStatus(ctx, &ordersv1.UpdateOrderStatusRequest{OrderId: id, Status: "shipped"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeOK, shipped.Code)
	require.Equal(s.T(), string(domain.OrderStatusShipped), shipped.Order.Status)

	missing, err := s.client.UpdateOrderStatus(ctx, &ordersv1.UpdateOrderStatusRequest{OrderId: "missing", Status: "Shipped"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeNotFound, missing.Code)
}

func (s *OrderLifecycleTestSuite) TestDeletedOrderIsGone() {
	ctx := context.Background()
	id := s.create(ctx, &ordersv1.OrderProduct{ProductId: "p-1", Quantity: 1}).Order.Id

	deleted, err := s.client.DeleteOrder(ctx, &ordersv1.OrderIdRequest{Id: id})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeOK, deleted.Code)
	require.NotNil(s.T(), deleted.Order.DeletedAt)
	require.False(s.T(), deleted.Order.DeletedAt.AsTime().Before(deleted.Order.CreatedAt.AsTime()))

	found, err := s.client.FindOrderById(ctx, &ordersv1.OrderIdRequest{Id: id})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeNotFound, found.Code)
	require.Equal(s.T(), "Order does not exist", found.Message)

	again, err := s.client.DeleteOrder(ctx, &ordersv1.OrderIdRequest{Id: id})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeNotFound, again.Code)
}

func (s *OrderLifecycleTestSuite) TestFilterByTotalRange() {
	ctx := context.Background()
	s.create(ctx, &ordersv1.OrderProduct{ProductId: "p-3", Quantity: 3})
	b := s.create(ctx, &ordersv1.OrderProduct{ProductId: "p-3", Quantity: 5})
	s.create(ctx, &ordersv1.OrderProduct{ProductId: "p-3", Quantity: 8})

	resp, err := s.client.FindOrderWithFilter(ctx, &ordersv1.OrderFilterRequest{MinTotal: "20", MaxTotal: "30"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeOK, resp.Code)
	require.Len(s.T(), resp.Orders, 1)
	require.Equal(s.T(), b.Order.Id, resp.Orders[0].Id)
	require.True(s.T(), decimal.NewFromInt(25).Equal(decimal.RequireFromString(resp.Orders[0].Total)))
}

func (s *OrderLifecycleTestSuite) TestPartialEnrichment() {
	ctx := context.Background()
	id := s.create(ctx,
		&ordersv1.OrderProduct{ProductId: "p-1", Quantity: 1},
		&ordersv1.OrderProduct{ProductId: "p-2", Quantity: 1},
	).Order.Id

	s.catalog.FailLookup("p-2", errors.New("catalog is down"))

	resp, err := s.client.FindOrderById(ctx, &ordersv1.OrderIdRequest{Id: id})
	require.NoError(s.T(), err)
	require.Equal(s.T(), ordersv1.CodeOK, resp.Code)
	require.Len(s.T(), resp.Order.OrderItems, 2)
	for _, item := range resp.Order.OrderItems {
		if item.ProductId == "p-2" {
			require.Nil(s.T(), item.Product)
			continue
		}
		require.NotNil(s.T(), item.Product)
		require.Equal(s.T(), "Keyboard", item.Product.Name)
	}
}

func TestOrderLifecycle(t *testing.T) {
	suite.Run(t, new(OrderLifecycleTestSuite))
}
