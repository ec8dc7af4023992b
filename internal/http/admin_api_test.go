package handlers_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuthGuard(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	app := newTestApp(t, hash)

	// no token
	resp, err := app.Test(httptest.NewRequest("GET", "/admin/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("missing token: want 401, got %d", resp.StatusCode)
	}

	// wrong token
	req := httptest.NewRequest("GET", "/admin/products", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("wrong token: want 401, got %d", resp.StatusCode)
	}

	// right token
	req = httptest.NewRequest("GET", "/admin/products", nil)
	req.Header.Set("X-Admin-Token", "s3cret")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("valid token: want 200, got %d", resp.StatusCode)
	}
}

func TestAdminCreateAndDuplicate(t *testing.T) {
	app := newTestApp(t, nil)

	body := `{"name":"Ginger Ale","price":2500,"base_stock":12}`
	req := httptest.NewRequest("POST", "/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var created struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &created); err != nil || !created.Success || created.ID == "" {
		t.Fatalf("create failed: %s", raw)
	}

	// same name again, differently spaced
	dup := `{"name":"Ginger  Ale","price":100,"base_stock":1}`
	req = httptest.NewRequest("POST", "/admin/products", strings.NewReader(dup))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var dupResp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	raw, _ = io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &dupResp); err != nil || dupResp.Success {
		t.Fatalf("duplicate must report a structured failure: %s", raw)
	}
	if dupResp.Message == "" {
		t.Fatal("duplicate failure needs a message")
	}
}

func TestAdminPatchNoFields(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest("PATCH", "/admin/products/p-coke", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil || out.Success {
		t.Fatalf("empty patch must be a structured no-op failure: %s", raw)
	}
}

func TestAdminSummaries(t *testing.T) {
	app := newTestApp(t, nil)

	// place one order through the webhook first
	_ = postUtterance(t, app, "1234 Coke Zero 2")

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/products/summary", nil))
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var rows []struct {
		Name       string `json:"name"`
		OrderedQty int    `json:"ordered_qty"`
		Remaining  int    `json:"remaining"`
		Status     string `json:"status"`
	}
	if err := json.Unmarshal(raw, &rows); err != nil || len(rows) == 0 {
		t.Fatalf("bad summary: %s", raw)
	}
	if rows[0].Name != "Coke Zero" || rows[0].OrderedQty != 2 || rows[0].Remaining != 8 {
		t.Fatalf("summary row = %+v", rows[0])
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/admin/orders/by-phone/1234", nil))
	if err != nil {
		t.Fatal(err)
	}
	raw, _ = io.ReadAll(resp.Body)
	var lines []struct {
		ProductName string `json:"product_name"`
		Quantity    int    `json:"quantity"`
		UnitPrice   int    `json:"unit_price"`
	}
	if err := json.Unmarshal(raw, &lines); err != nil || len(lines) != 1 {
		t.Fatalf("bad order listing: %s", raw)
	}
	if lines[0].ProductName != "Coke Zero" || lines[0].Quantity != 2 || lines[0].UnitPrice != 2000 {
		t.Fatalf("order line = %+v", lines[0])
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/admin/orders/summary", nil))
	if err != nil {
		t.Fatal(err)
	}
	raw, _ = io.ReadAll(resp.Body)
	var totals []struct {
		Name        string `json:"name"`
		TotalQty    int    `json:"total_qty"`
		TotalAmount int    `json:"total_amount"`
	}
	if err := json.Unmarshal(raw, &totals); err != nil || len(totals) == 0 {
		t.Fatalf("bad totals: %s", raw)
	}
	if totals[0].TotalQty != 2 || totals[0].TotalAmount != 4000 {
		t.Fatalf("totals row = %+v", totals[0])
	}
}
