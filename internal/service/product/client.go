// Package product содержит реализации domain.ProductClient: gRPC-клиент
// внешнего сервиса товаров, in-process каталог и кэширующий декоратор.
package product

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	productv1 "github.com/vladislavdragonenkov/orders/proto/product/v1"
)

// Client обращается к сервису товаров по gRPC.
type Client struct {
	api    productv1.ProductServiceClient
	logger *log.Entry
}

// NewClient связывает типизированный stub с соединением.
func NewClient(conn grpc.ClientConnInterface, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.WithField("component", "product-client")
	}
	return &Client{
		api:    productv1.NewProductServiceClient(conn),
		logger: logger,
	}
}

// FindByID запрашивает снимок товара.
func (c *Client) FindByID(ctx context.Context, productID string) (domain.Product, error) {
	resp, err := c.api.FindProductById(ctx, &productv1.FindProductByIdRequest{Id: productID})
	if err != nil {
		return domain.Product{}, mapRPCError(err)
	}
	return fromWire(resp)
}

// OrderRequest списывает остатки по всем строкам одним вызовом.
func (c *Client) OrderRequest(ctx context.Context, lines []domain.ProductLine) (domain.Fulfillment, error) {
	req := &productv1.OrderRequest{Products: make([]*productv1.OrderProduct, 0, len(lines))}
	for _, line := range lines {
		req.Products = append(req.Products, &productv1.OrderProduct{ProductId: line.ProductID, Quantity: line.Quantity})
	}

	resp, err := c.api.OrderRequest(ctx, req)
	if err != nil {
		return domain.Fulfillment{}, mapRPCError(err)
	}

	if resp.GetStatus() != productv1.OrderRequestStatus_ORDER_REQUEST_STATUS_SUCCESS {
		c.logger.WithFields(log.Fields{
			"status": resp.GetStatus().String(),
			"error":  resp.GetError(),
		}).Info("order request rejected")
		return domain.Fulfillment{OK: false, Message: resp.GetError()}, nil
	}

	products := make([]domain.Product, 0, len(resp.GetProducts()))
	for _, p := range resp.GetProducts() {
		product, err := fromWire(p)
		if err != nil {
			return domain.Fulfillment{}, err
		}
		products = append(products, product)
	}
	return domain.Fulfillment{OK: true, Products: products}, nil
}

func mapRPCError(err error) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, status.Convert(err).Message())
	}
	return fmt.Errorf("%w: %v", domain.ErrProductUnavailable, err)
}

// fromWire разбирает снимок товара; нечитаемая цена считается сбоем сервиса товаров.
func fromWire(p *productv1.Product) (domain.Product, error) {
	price, err := decimal.NewFromString(p.GetPrice())
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: product %s has malformed price %q", domain.ErrProductUnavailable, p.GetId(), p.GetPrice())
	}
	return domain.Product{
		ID:          p.GetId(),
		Name:        p.GetName(),
		Category:    p.GetCategory(),
		Make:        p.GetMake(),
		Description: p.GetDescription(),
		Price:       price,
		Quantity:    p.GetQuantity(),
	}, nil
}

func toWire(p domain.Product) *productv1.Product {
	return &productv1.Product{
		Id:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Make:        p.Make,
		Description: p.Description,
		Price:       p.Price.String(),
		Quantity:    p.Quantity,
	}
}

var _ domain.ProductClient = (*Client)(nil)
