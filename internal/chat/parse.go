package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// Deployment trigger literals. A customer writes either
//
//	"1234 Coke Zero 2"        (order: phone digits, product name, quantity)
//	"1234 order-confirm"      (lookup of recent orders)
//
// The unit word may trail the quantity ("2pcs", "2 pcs").
const (
	confirmKeyword = "order-confirm"
	confirmPartA   = "order"
	confirmPartB   = "confirm"
	unitWord       = "pcs"
)

var (
	rePhoneRun   = regexp.MustCompile(`\d{4}`)
	rePhoneExact = regexp.MustCompile(`^\d{4}$`)
	reQtyTail    = regexp.MustCompile(`(\d+)\s*(?:` + unitWord + `)?\s*$`)
)

// Command is the outcome of interpreting one utterance.
type Command interface{ command() }

// Lookup asks for the recent order history of a phone4 key.
type Lookup struct {
	Phone4 string
}

// Order places a single-product order. Product holds the normalized
// name candidate, not a resolved catalog entry.
type Order struct {
	Phone4   string
	Product  string
	Quantity int
}

func (Lookup) command() {}
func (Order) command()  {}

// Interpret classifies text as a Lookup, an Order, or nil when the text
// matches neither grammar. Lookup detection runs first and wins.
//
// Known limitation: a digit run that belongs to the product name itself
// (a product called "7UP 1000ml" and the like) can be mistaken for the
// phone key or the quantity. The grammar accepts that ambiguity rather
// than guessing.
func Interpret(text string) Command {
	if l, ok := parseLookup(text); ok {
		return l
	}
	if o, ok := parseOrder(text); ok {
		return o
	}
	return nil
}

// parseLookup matches "<4 digits> ...order...confirm...". The first
// whitespace token must be exactly four digits; the remaining tokens are
// concatenated and searched for the confirm keyword, or for both keyword
// fragments in any order.
func parseLookup(text string) (Lookup, bool) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 || !rePhoneExact.MatchString(parts[0]) {
		return Lookup{}, false
	}
	rest := strings.Join(parts[1:], "")
	if strings.Contains(rest, confirmKeyword) ||
		(strings.Contains(rest, confirmPartA) && strings.Contains(rest, confirmPartB)) {
		return Lookup{Phone4: parts[0]}, true
	}
	return Lookup{}, false
}

// parseOrder runs the staged extraction pipeline: locate the phone run,
// locate the trailing quantity, subtract both from the text, normalize
// the remainder into the product-name candidate. Each stage bails out
// with ok=false instead of guessing.
func parseOrder(text string) (Order, bool) {
	raw := strings.TrimSpace(text)

	phone4, ok := findPhone(raw)
	if !ok {
		return Order{}, false
	}
	qty, ok := findQuantity(raw)
	if !ok {
		return Order{}, false
	}
	candidate, ok := extractProduct(raw, phone4)
	if !ok {
		return Order{}, false
	}
	return Order{Phone4: phone4, Product: candidate, Quantity: qty}, true
}

// findPhone returns the first run of four consecutive digits.
func findPhone(raw string) (string, bool) {
	m := rePhoneRun.FindString(raw)
	return m, m != ""
}

// findQuantity parses the trailing "<digits> [unit word]" run. Zero is
// syntactically valid; leading zeros read numerically.
func findQuantity(raw string) (int, bool) {
	m := reQtyTail.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil {
		// digit run too long for int
		return 0, false
	}
	return qty, true
}

// extractProduct removes the first phone4 occurrence, the trailing
// quantity pattern, and any leftover unit-word tokens, then normalizes
// what remains. An empty remainder means the text had no product name.
func extractProduct(raw, phone4 string) (string, bool) {
	rest := strings.Replace(raw, phone4, "", 1)
	rest = reQtyTail.ReplaceAllString(rest, "")
	rest = strings.ReplaceAll(rest, unitWord, "")
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	return Normalize(rest), true
}
