package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       int64   `json:"price"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

type ProductListResponse struct {
	Items []Product `json:"items"`
}

func Test_Products_ListAndDetail(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/api/products", "", nil)
	requireStatus(t, resp, http.StatusOK, body)

	var list ProductListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("json.Unmarshal(ProductListResponse) failed: %v body=%s", err, string(body))
	}
	if len(list.Items) != 3 {
		t.Fatalf("catalog should have 3 products: body=%s", string(body))
	}

	resp, body = c.doJSON(ctx, t, http.MethodGet, "/api/products/2", "", nil)
	requireStatus(t, resp, http.StatusOK, body)

	var p Product
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("json.Unmarshal(Product) failed: %v body=%s", err, string(body))
	}
	if p.Name != "Jaggery Blocks" || p.Price != 80 {
		t.Fatalf("unexpected product: body=%s", string(body))
	}

	//無いIDは404
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/api/products/999", "", nil)
	requireStatus(t, resp, http.StatusNotFound, body)
}
