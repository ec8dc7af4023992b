package services_test

import (
	"fmt"
	"testing"

	"chatorder/internal/domain"
	"chatorder/internal/repos"
	"chatorder/internal/services"
)

func TestLedgerRecordCapturesPrice(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	svc := services.NewLedgerService(orderRepo)

	p, err := prodRepo.Get("p-coke")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Record("1234", p, 2); err != nil {
		t.Fatal(err)
	}

	// A later price change must not alter the recorded total.
	newPrice := 9999
	if err := prodRepo.Update("p-coke", domain.ProductUpdate{Price: &newPrice}); err != nil {
		t.Fatal(err)
	}

	lines, err := svc.ListRecent("1234")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	if lines[0].UnitPrice != 2000 || lines[0].Quantity != 2 {
		t.Fatalf("historical line changed: %+v", lines[0])
	}
}

func TestLedgerRecordAtomicity(t *testing.T) {
	db := memdb(t)
	orderRepo := repos.NewOrderRepo(db)
	svc := services.NewLedgerService(orderRepo)

	before1, before2, err := orderRepo.Counts()
	if err != nil {
		t.Fatal(err)
	}

	// quantity -1 violates the item CHECK after the order row already
	// went in; the whole write must roll back.
	p := domain.Product{ID: "p-coke", Name: "Coke Zero", Price: 2000}
	if _, err := svc.Record("1234", p, -1); err == nil {
		t.Fatal("expected the item insert to fail")
	}

	after1, after2, err := orderRepo.Counts()
	if err != nil {
		t.Fatal(err)
	}
	if after1 != before1 || after2 != before2 {
		t.Fatalf("counts changed: orders %d->%d items %d->%d", before1, after1, before2, after2)
	}
}

func TestLedgerListingOrderAndCap(t *testing.T) {
	db := memdb(t)
	orderRepo := repos.NewOrderRepo(db)
	svc := services.NewLedgerService(orderRepo)

	// 60 same-second orders; the rowid tie-break must keep reverse
	// insertion order and the chat window must cap at 50.
	for i := 0; i < 60; i++ {
		o := domain.Order{ID: fmt.Sprintf("o-%03d", i), Phone4: "1234", CreatedAt: "2025-11-02 10:00:00"}
		item := domain.OrderItem{OrderID: o.ID, ProductID: "p-coke", Quantity: 1, UnitPrice: 2000}
		if err := orderRepo.InsertWithItem(o, item); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := svc.ListRecent("1234")
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 50 {
		t.Fatalf("chat window = %d lines, want 50", len(recent))
	}
	if recent[0].OrderID != "o-059" || recent[49].OrderID != "o-010" {
		t.Fatalf("wrong window: first %s last %s", recent[0].OrderID, recent[49].OrderID)
	}

	all, err := svc.ListAll("1234")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 60 {
		t.Fatalf("admin listing = %d lines, want 60", len(all))
	}

	empty, err := svc.ListRecent("0000")
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Fatalf("want empty slice for unknown phone, got %d", len(empty))
	}
}

func TestLedgerTotalsByProduct(t *testing.T) {
	db := memdb(t)
	orderRepo := repos.NewOrderRepo(db)

	for i, qty := range []int{2, 3} {
		o := domain.Order{ID: fmt.Sprintf("o-%d", i), Phone4: "1234", CreatedAt: "2025-11-02 10:00:00"}
		item := domain.OrderItem{OrderID: o.ID, ProductID: "p-coke", Quantity: qty, UnitPrice: 2000}
		if err := orderRepo.InsertWithItem(o, item); err != nil {
			t.Fatal(err)
		}
	}

	totals, err := orderRepo.TotalsByProduct()
	if err != nil {
		t.Fatal(err)
	}
	byID := map[string]domain.ProductTotals{}
	for _, tt := range totals {
		byID[tt.ProductID] = tt
	}
	if got := byID["p-coke"]; got.TotalQty != 5 || got.TotalAmount != 10000 {
		t.Fatalf("coke totals = %+v", got)
	}
	// never-ordered products still appear, zeroed
	if got := byID["p-pie"]; got.TotalQty != 0 || got.TotalAmount != 0 {
		t.Fatalf("pie totals = %+v", got)
	}
}
