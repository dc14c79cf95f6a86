package ordersv1

import (
	"testing"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestFileDescriptorMetadata(t *testing.T) {
	fd := File_proto_orders_v1_orders_proto
	if got := string(fd.Package()); got != "orders.v1" {
		t.Fatalf("unexpected package %q", got)
	}
	if fd.Services().Len() != 1 {
		t.Fatalf("expected one service, got %d", fd.Services().Len())
	}
	svc := fd.Services().Get(0)
	if got := string(svc.FullName()); got != OrderService_ServiceDesc.ServiceName {
		t.Fatalf("service name mismatch: %q vs %q", got, OrderService_ServiceDesc.ServiceName)
	}
	if svc.Methods().Len() != len(OrderService_ServiceDesc.Methods) {
		t.Fatalf("method count mismatch: %d vs %d", svc.Methods().Len(), len(OrderService_ServiceDesc.Methods))
	}
	if fd.Messages().ByName("Order") == nil {
		t.Fatalf("Order message is missing")
	}
}

func TestOrderRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	in := &OrderResponse{
		Code:    CodeOK,
		Message: MessageSuccess,
		Order: &Order{
			Id:        "order-1",
			Status:    "Confirmed",
			Total:     "19.999",
			CreatedAt: timestamppb.New(created),
			OrderItems: []*OrderItem{{
				OrderId:   "order-1",
				ProductId: "p-1",
				Quantity:  1,
				Price:     "19.999",
				Product:   &Product{Id: "p-1", Name: "Keyboard", Price: "21"},
			}},
		},
	}

	raw, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := &OrderResponse{}
	if err := proto.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch:\n in: %v\nout: %v", in, out)
	}
	if got := out.GetOrder().GetOrderItems()[0].GetProduct().GetName(); got != "Keyboard" {
		t.Fatalf("unexpected product name %q", got)
	}
	if !out.GetOrder().GetCreatedAt().AsTime().Equal(created) {
		t.Fatalf("created_at mismatch: %v", out.GetOrder().GetCreatedAt().AsTime())
	}
}

func TestNilGetters(t *testing.T) {
	var resp *OrdersResponse
	if resp.GetCode() != 0 || resp.GetMessage() != "" || resp.GetOrders() != nil {
		t.Fatalf("nil response getters must return zero values")
	}
	var filter *OrderFilterRequest
	if filter.GetMinTotal() != "" || filter.GetFromDate() != nil {
		t.Fatalf("nil filter getters must return zero values")
	}
}
