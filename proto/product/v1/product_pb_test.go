package productv1

import (
	"testing"

	"google.golang.org/protobuf/proto"
)

func TestOrderRequestStatusHelpers(t *testing.T) {
	s := OrderRequestStatus_ORDER_REQUEST_STATUS_SUCCESS
	if got := s.Enum(); got == nil || *got != s {
		t.Fatalf("Enum() mismatch: got %v want %v", got, s)
	}
	if s.String() != "ORDER_REQUEST_STATUS_SUCCESS" {
		t.Fatalf("unexpected String(): %q", s.String())
	}
	if s.Descriptor().Values().Len() != 3 {
		t.Fatalf("expected three enum values")
	}
	if OrderRequestStatus(999).String() == "" {
		t.Fatalf("unknown enum string must not be empty")
	}
}

func TestFileDescriptorMetadata(t *testing.T) {
	fd := File_proto_product_v1_product_proto
	if got := string(fd.Package()); got != "product.v1" {
		t.Fatalf("unexpected package %q", got)
	}
	svc := fd.Services().Get(0)
	if got := string(svc.FullName()); got != ProductService_ServiceDesc.ServiceName {
		t.Fatalf("service name mismatch: %q", got)
	}
}

func TestOrderRequestResponseRoundTrip(t *testing.T) {
	in := &OrderRequestResponse{
		Status:   OrderRequestStatus_ORDER_REQUEST_STATUS_FAILED,
		Products: []*Product{{Id: "p-1", Price: "10.5", Quantity: 3}},
		Error:    "out of stock",
	}
	raw, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := &OrderRequestResponse{}
	if err := proto.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch:\n in: %v\nout: %v", in, out)
	}
}
