package chat

import (
	"strings"
	"testing"

	"chatorder/internal/domain"
)

func TestReplyConfirmation(t *testing.T) {
	got := ReplyConfirmation("1234", "Coke Zero", 2, 2000)
	for _, want := range []string{"1234", "Coke Zero", "2", "4000", "order-confirm"} {
		if !strings.Contains(got, want) {
			t.Errorf("confirmation missing %q:\n%s", want, got)
		}
	}
}

func TestReplySummary(t *testing.T) {
	lines := []domain.OrderLine{
		{CreatedAt: "2025-11-02 10:00:00", ProductName: "Coke Zero", Quantity: 2, UnitPrice: 2000},
		{CreatedAt: "2025-11-01 09:00:00", ProductName: "Choco Pie", Quantity: 1, UnitPrice: 1500},
	}
	got := ReplySummary("1234", lines)
	for _, want := range []string{"1234", "Coke Zero", "4000", "Choco Pie", "1500", "5500"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestReplySummaryEmpty(t *testing.T) {
	got := ReplySummary("9999", nil)
	if got != "No orders yet for 9999." {
		t.Fatalf("empty summary = %q", got)
	}
}

func TestReplyHelpAndNotFound(t *testing.T) {
	if !strings.Contains(ReplyHelp(), "1234 Coke Zero 2") {
		t.Error("help must show the order format example")
	}
	if !strings.Contains(ReplyProductNotFound(), "exact") {
		t.Error("not-found reply must ask for the exact name")
	}
}
