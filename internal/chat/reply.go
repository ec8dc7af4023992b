package chat

import (
	"fmt"
	"strings"

	"chatorder/internal/domain"
)

// Reply formatters are pure: they map a structured result onto the plain
// text the bot sends back. The transport wraps the text in its envelope.

func ReplyConfirmation(phone4, productName string, qty, unitPrice int) string {
	total := qty * unitPrice
	return fmt.Sprintf(
		"[Order received]\n"+
			"Phone: %s\n"+
			"Item: %s\n"+
			"Qty: %d%s\n"+
			"Total: %d\n\n"+
			"Send '%s %s' to see your orders so far.",
		phone4, productName, qty, unitWord, total, phone4, confirmKeyword)
}

// ReplySummary itemizes a customer's recent orders with a running grand
// total over the returned window.
func ReplySummary(phone4 string, lines []domain.OrderLine) string {
	if len(lines) == 0 {
		return fmt.Sprintf("No orders yet for %s.", phone4)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[Recent orders for %s]\n", phone4)
	grand := 0
	for _, l := range lines {
		subtotal := l.Quantity * l.UnitPrice
		grand += subtotal
		fmt.Fprintf(&b, "- %s | %s x%d%s = %d\n", l.CreatedAt, l.ProductName, l.Quantity, unitWord, subtotal)
	}
	fmt.Fprintf(&b, "\nGrand total over the last %d orders: %d", len(lines), grand)
	return b.String()
}

func ReplyHelp() string {
	return "That order didn't come through right.\n\n" +
		"Example:\n" +
		"1234 Coke Zero 2\n" +
		"(last 4 phone digits, product name, quantity)"
}

func ReplyProductNotFound() string {
	return "Couldn't find that exact product name.\n" +
		"Please type the product name exactly as announced."
}
