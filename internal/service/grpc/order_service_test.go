package grpcsvc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	grpcsvc "github.com/vladislavdragonenkov/orders/internal/service/grpc"
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
	"github.com/vladislavdragonenkov/orders/internal/service/product"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

const bufSize = 1024 * 1024

type testEnv struct {
	client  ordersv1.OrderServiceClient
	catalog *product.Catalog
}

func newTestServer(t *testing.T) testEnv {
	t.Helper()
	listener := bufconn.Listen(bufSize)
	logger := loggerForTests()

	catalog := product.NewCatalog(
		domain.Product{ID: "p-1", Name: "Keyboard", Price: decimal.RequireFromString("10.50"), Quantity: 10},
		domain.Product{ID: "p-2", Name: "Mouse", Price: decimal.RequireFromString("4.50"), Quantity: 1},
	)
	aggregate := orders.NewService(memory.NewStore(), catalog, orders.WithLogger(logger))

	server := grpc.NewServer()
	ordersv1.RegisterOrderServiceServer(server, grpcsvc.NewOrderService(aggregate, logger))

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.WithError(err).Error("grpc serve failed")
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})
	return testEnv{client: ordersv1.NewOrderServiceClient(conn), catalog: catalog}
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func createRequest(products ...*ordersv1.OrderProduct) *ordersv1.CreateOrderRequest {
	return &ordersv1.CreateOrderRequest{
		PhoneNumber:   "+70000000000",
		Email:         "buyer@example.com",
		CustomerName:  "Ivan Petrov",
		Address:       "Moscow",
		OrderProducts: products,
	}
}

func TestOrderService_Lifecycle(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	created, err := env.client.CreateOrder(ctx, createRequest(
		&ordersv1.OrderProduct{ProductId: "p-1", Quantity: 2},
		&ordersv1.OrderProduct{ProductId: "p-2", Quantity: 1},
	))
	require.NoError(t, err)
	require.Equal(t, ordersv1.CodeOK, created.Code)
	require.Equal(t, ordersv1.MessageSuccess, created.Message)
	require.NotNil(t, created.Order)
	assert.Equal(t, "Confirmed", created.Order.Status)
	assert.True(t, decimal.RequireFromString(created.Order.Total).Equal(decimal.RequireFromString("25.5")))
	require.Len(t, created.Order.OrderItems, 2)

	found, err := env.client.FindOrderById(ctx, &ordersv1.OrderIdRequest{Id: created.Order.Id})
	require.NoError(t, err)
	require.Equal(t, ordersv1.CodeOK, found.Code)
	for _, item := range found.Order.OrderItems {
		require.NotNil(t, item.Product)
	}

	listed, err := env.client.FindOrderWithFilter(ctx, &ordersv1.OrderFilterRequest{CustomerName: "petrov"})
	require.NoError(t, err)
	require.Equal(t, ordersv1.CodeOK, listed.Code)
	require.Len(t, listed.Orders, 1)

	updated, err := env.client.UpdateOrderStatus(ctx, &ordersv1.UpdateOrderStatusRequest{OrderId: created.Order.Id, Status: "Shipped"})
	require.NoError(t, err)
	require.Equal(t, ordersv1.CodeOK, updated.Code)
	assert.Equal(t, "Shipped", updated.Order.Status)

	dup, err := env.client.UpdateOrderStatus(ctx, &ordersv1.UpdateOrderStatusRequest{OrderId: created.Order.Id, Status: "Shipped"})
	require.NoError(t, err)
	assert.Equal(t, ordersv1.CodeConflict, dup.Code)
	assert.Equal(t, "Duplicate order status", dup.Message)
	assert.Nil(t, dup.Order)

	deleted, err := env.client.DeleteOrder(ctx, &ordersv1.OrderIdRequest{Id: created.Order.Id})
	require.NoError(t, err)
	require.Equal(t, ordersv1.CodeOK, deleted.Code)
	require.NotNil(t, deleted.Order.DeletedAt)

	missing, err := env.client.FindOrderById(ctx, &ordersv1.OrderIdRequest{Id: created.Order.Id})
	require.NoError(t, err)
	assert.Equal(t, ordersv1.CodeNotFound, missing.Code)
	assert.Equal(t, "Order does not exist", missing.Message)
}

func TestOrderService_CreateErrors(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	dup, err := env.client.CreateOrder(ctx, createRequest(
		&ordersv1.OrderProduct{ProductId: "p-1", Quantity: 1},
		&ordersv1.OrderProduct{ProductId: "p-1", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, ordersv1.CodeConflict, dup.Code)
	assert.Equal(t, "Duplicated product id: p-1", dup.Message)

	rejected, err := env.client.CreateOrder(ctx, createRequest(&ordersv1.OrderProduct{ProductId: "p-2", Quantity: 5}))
	require.NoError(t, err)
	assert.Equal(t, ordersv1.CodeBadRequest, rejected.Code)
	assert.Contains(t, rejected.Message, "out of stock")
	assert.Equal(t, int32(1), env.catalog.Stock("p-2"))

	listed, err := env.client.FindOrderWithFilter(ctx, &ordersv1.OrderFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, listed.Orders)
}

func TestOrderService_UnknownStatusFilter(t *testing.T) {
	env := newTestServer(t)

	resp, err := env.client.FindOrderWithFilter(context.Background(), &ordersv1.OrderFilterRequest{Status: "Lost"})
	require.NoError(t, err)
	assert.Equal(t, ordersv1.CodeBadRequest, resp.Code)
	assert.Equal(t, "Order status does not exist", resp.Message)
	assert.Empty(t, resp.Orders)
}

func TestOrderService_MalformedTotalFilter(t *testing.T) {
	env := newTestServer(t)

	resp, err := env.client.FindOrderWithFilter(context.Background(), &ordersv1.OrderFilterRequest{MinTotal: "ten"})
	require.NoError(t, err)
	assert.Equal(t, ordersv1.CodeBadRequest, resp.Code)
	assert.Contains(t, resp.Message, "min_total")
	assert.Empty(t, resp.Orders)
}

func TestOrderService_TimestampsAndTotalsOnWire(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	created, err := env.client.CreateOrder(ctx, createRequest(&ordersv1.OrderProduct{ProductId: "p-1", Quantity: 1}))
	require.NoError(t, err)
	require.Equal(t, ordersv1.CodeOK, created.Code)
	order := created.GetOrder()
	require.NotNil(t, order.GetCreatedAt())
	require.NotNil(t, order.GetUpdatedAt())
	assert.Nil(t, order.GetDeletedAt())
	assert.Equal(t, "10.5", order.GetTotal())
	require.Len(t, order.GetOrderItems(), 1)
	assert.Equal(t, "10.5", order.GetOrderItems()[0].GetPrice())
	assert.Equal(t, "10.5", order.GetOrderItems()[0].GetProduct().GetPrice())

	from := order.GetCreatedAt().AsTime().Add(-time.Minute)
	to := order.GetCreatedAt().AsTime().Add(time.Minute)
	inRange, err := env.client.FindOrderWithFilter(ctx, &ordersv1.OrderFilterRequest{
		FromDate: timestamppb.New(from),
		ToDate:   timestamppb.New(to),
		MinTotal: "10.5",
		MaxTotal: "10.5",
	})
	require.NoError(t, err)
	require.Equal(t, ordersv1.CodeOK, inRange.Code)
	require.Len(t, inRange.GetOrders(), 1)
	assert.Equal(t, order.GetId(), inRange.GetOrders()[0].GetId())

	later, err := env.client.FindOrderWithFilter(ctx, &ordersv1.OrderFilterRequest{FromDate: timestamppb.New(to)})
	require.NoError(t, err)
	require.Equal(t, ordersv1.CodeOK, later.Code)
	assert.Empty(t, later.GetOrders())
}

func TestOrderService_NilRequest(t *testing.T) {
	svc := grpcsvc.NewOrderService(nil, loggerForTests())

	_, err := svc.FindOrderById(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.FindOrderWithFilter(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.CreateOrder(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.UpdateOrderStatus(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.DeleteOrder(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
