package product

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	productv1 "github.com/vladislavdragonenkov/orders/proto/product/v1"
)

// Catalog — in-process сервис товаров для локального запуска и тестов.
// Server() отдаёт его же как gRPC-сервер productv1.
type Catalog struct {
	mu       sync.Mutex
	products map[string]domain.Product
	// failures задаёт ошибку FindByID для конкретного товара.
	failures map[string]error

	FindCalls    int
	RequestCalls int
}

// NewCatalog создаёт каталог с начальным набором товаров.
func NewCatalog(products ...domain.Product) *Catalog {
	c := &Catalog{
		products: make(map[string]domain.Product, len(products)),
		failures: make(map[string]error),
	}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

// Put добавляет или заменяет товар.
func (c *Catalog) Put(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.ID] = p
}

// FailLookup заставляет FindByID возвращать err для productID; nil снимает ошибку.
func (c *Catalog) FailLookup(productID string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.failures, productID)
		return
	}
	c.failures[productID] = err
}

// Stock возвращает текущий остаток товара.
func (c *Catalog) Stock(productID string) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products[productID].Quantity
}

func (c *Catalog) FindByID(_ context.Context, productID string) (domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.FindCalls++
	if err := c.failures[productID]; err != nil {
		return domain.Product{}, err
	}
	p, ok := c.products[productID]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
	}
	return p, nil
}

// OrderRequest проверяет все строки и только затем списывает остатки.
func (c *Catalog) OrderRequest(_ context.Context, lines []domain.ProductLine) (domain.Fulfillment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.RequestCalls++
	for _, line := range lines {
		p, ok := c.products[line.ProductID]
		if !ok {
			return domain.Fulfillment{Message: fmt.Sprintf("Product %s does not exist", line.ProductID)}, nil
		}
		if line.Quantity <= 0 || p.Quantity < line.Quantity {
			return domain.Fulfillment{Message: fmt.Sprintf("Product %s is out of stock", line.ProductID)}, nil
		}
	}

	snapshots := make([]domain.Product, 0, len(lines))
	for _, line := range lines {
		p := c.products[line.ProductID]
		p.Quantity -= line.Quantity
		c.products[line.ProductID] = p
		snapshots = append(snapshots, p)
	}
	return domain.Fulfillment{OK: true, Products: snapshots}, nil
}

// Server возвращает gRPC-представление каталога.
func (c *Catalog) Server() productv1.ProductServiceServer {
	return &catalogServer{catalog: c}
}

type catalogServer struct {
	productv1.UnimplementedProductServiceServer
	catalog *Catalog
}

func (s *catalogServer) FindProductById(ctx context.Context, req *productv1.FindProductByIdRequest) (*productv1.Product, error) {
	p, err := s.catalog.FindByID(ctx, req.GetId())
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return toWire(p), nil
}

func (s *catalogServer) OrderRequest(ctx context.Context, req *productv1.OrderRequest) (*productv1.OrderRequestResponse, error) {
	lines := make([]domain.ProductLine, 0, len(req.GetProducts()))
	for _, p := range req.GetProducts() {
		lines = append(lines, domain.ProductLine{ProductID: p.GetProductId(), Quantity: p.GetQuantity()})
	}

	res, err := s.catalog.OrderRequest(ctx, lines)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !res.OK {
		return &productv1.OrderRequestResponse{
			Status: productv1.OrderRequestStatus_ORDER_REQUEST_STATUS_FAILED,
			Error:  res.Message,
		}, nil
	}

	out := &productv1.OrderRequestResponse{
		Status:   productv1.OrderRequestStatus_ORDER_REQUEST_STATUS_SUCCESS,
		Products: make([]*productv1.Product, 0, len(res.Products)),
	}
	for _, p := range res.Products {
		out.Products = append(out.Products, toWire(p))
	}
	return out, nil
}

var _ domain.ProductClient = (*Catalog)(nil)
