// Package httpapi публикует операции сервиса заказов по REST поверх gin.
// HTTP-статус ответа совпадает с полем code конверта, тела запросов и ответов
// кодируются protojson.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

const (
	requestTimeout = 10 * time.Second
	jsonContent    = "application/json; charset=utf-8"
)

var (
	marshalOptions   = protojson.MarshalOptions{EmitUnpopulated: true}
	unmarshalOptions = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// Handler транслирует REST-запросы в вызовы ordersv1.OrderServiceServer.
type Handler struct {
	orders ordersv1.OrderServiceServer
	logger *log.Entry
}

// NewRouter собирает gin-движок с маршрутами /v1/orders.
func NewRouter(orders ordersv1.OrderServiceServer, logger *log.Entry) *gin.Engine {
	if logger == nil {
		logger = log.New().WithField("component", "http-api")
	}
	h := &Handler{orders: orders, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery(), h.accessLog())

	v1 := router.Group("/v1/orders")
	v1.GET("", h.findOrders)
	v1.POST("", h.createOrder)
	v1.GET("/:id", h.findOrder)
	v1.PATCH("/:id/status", h.updateStatus)
	v1.DELETE("/:id", h.deleteOrder)

	return router
}

type statusBody struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) findOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.orders.FindOrderById(ctx, &ordersv1.OrderIdRequest{Id: c.Param("id")})
	h.writeOrder(c, resp, err)
}

func (h *Handler) findOrders(c *gin.Context) {
	req, err := filterFromQuery(c)
	if err != nil {
		h.writeProto(c, http.StatusBadRequest, &ordersv1.OrdersResponse{Code: ordersv1.CodeBadRequest, Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.orders.FindOrderWithFilter(ctx, req)
	if err != nil {
		h.writeTransportError(c, err)
		return
	}
	h.writeProto(c, int(resp.GetCode()), resp)
}

func (h *Handler) createOrder(c *gin.Context) {
	req := &ordersv1.CreateOrderRequest{}
	body, err := c.GetRawData()
	if err == nil {
		err = unmarshalOptions.Unmarshal(body, req)
	}
	if err != nil {
		h.badRequest(c, "Malformed request body")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.orders.CreateOrder(ctx, req)
	h.writeOrder(c, resp, err)
}

func (h *Handler) updateStatus(c *gin.Context) {
	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "Status is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.orders.UpdateOrderStatus(ctx, &ordersv1.UpdateOrderStatusRequest{OrderId: c.Param("id"), Status: body.Status})
	h.writeOrder(c, resp, err)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.orders.DeleteOrder(ctx, &ordersv1.OrderIdRequest{Id: c.Param("id")})
	h.writeOrder(c, resp, err)
}

func (h *Handler) writeOrder(c *gin.Context, resp *ordersv1.OrderResponse, err error) {
	if err != nil {
		h.writeTransportError(c, err)
		return
	}
	h.writeProto(c, int(resp.GetCode()), resp)
}

func (h *Handler) writeTransportError(c *gin.Context, err error) {
	h.logger.WithError(err).WithField("path", c.FullPath()).Error("order handler failed")
	h.writeProto(c, http.StatusInternalServerError, &ordersv1.OrderResponse{Code: ordersv1.CodeInternal, Message: "Internal server error"})
}

func (h *Handler) badRequest(c *gin.Context, message string) {
	h.writeProto(c, http.StatusBadRequest, &ordersv1.OrderResponse{Code: ordersv1.CodeBadRequest, Message: message})
}

func (h *Handler) writeProto(c *gin.Context, code int, msg proto.Message) {
	body, err := marshalOptions.Marshal(msg)
	if err != nil {
		h.logger.WithError(err).WithField("path", c.FullPath()).Error("failed to marshal response")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(code, jsonContent, body)
}

func (h *Handler) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		h.logger.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(started),
		}).Debug("http request")
	}
}

// filterFromQuery разбирает параметры поиска. minTotal/maxTotal передаются как есть
// и проверяются сервисом, fromDate/toDate — RFC 3339.
func filterFromQuery(c *gin.Context) (*ordersv1.OrderFilterRequest, error) {
	req := &ordersv1.OrderFilterRequest{
		PhoneNumber:  c.Query("phoneNumber"),
		Email:        c.Query("email"),
		CustomerName: c.Query("customerName"),
		Address:      c.Query("address"),
		Status:       c.Query("status"),
		MinTotal:     c.Query("minTotal"),
		MaxTotal:     c.Query("maxTotal"),
	}

	var err error
	if req.FromDate, err = timeParam(c, "fromDate"); err != nil {
		return nil, err
	}
	if req.ToDate, err = timeParam(c, "toDate"); err != nil {
		return nil, err
	}
	return req, nil
}

func timeParam(c *gin.Context, name string) (*timestamppb.Timestamp, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return timestamppb.New(value), nil
}
