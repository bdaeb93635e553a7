package export

import (
	"bytes"
	"testing"

	"github.com/andrewmaci/KebabManager/internal/order"
)

func TestOrderReportPDF(t *testing.T) {
	orders := []order.Data{
		{CustomerName: "Jan", KebabType: "Doner", Size: "L", Sauce: "garlic", MeatType: "chicken"},
		{CustomerName: "Ola", KebabType: "Durum", Size: "M", Sauce: "hot", MeatType: "beef"},
	}
	var buf bytes.Buffer
	if err := OrderReportPDF(&buf, orders, "2024-01-01"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("not a PDF: %q", buf.Bytes()[:8])
	}
}

func TestOrderReportPDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := OrderReportPDF(&buf, nil, ""); err != nil {
		t.Fatalf("render empty: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty output")
	}
}

func TestOrderReportPDFManyRows(t *testing.T) {
	orders := make([]order.Data, 120)
	for i := range orders {
		orders[i] = order.Data{CustomerName: "A", KebabType: "Doner", Size: "S", Sauce: "mild", MeatType: "lamb"}
	}
	var buf bytes.Buffer
	if err := OrderReportPDF(&buf, orders, "2024-01-01"); err != nil {
		t.Fatalf("render multipage: %v", err)
	}
}
