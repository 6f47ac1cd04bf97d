package validate

import (
	"context"
	"strconv"
	"strings"
	"testing"
)

func TestValidateProductFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewProductValidator()

	validJSON := minimalValidProductJSON("p-1", "Macbook", 120000)

	product, err := ValidateProductFromJSON(ctx, validator, []byte(validJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID != "p-1" {
		t.Fatalf("unexpected product id: %s", product.ID)
	}
}

func TestValidateProductFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewProductValidator()

	raw := `{"unknown":"x",` + minimalValidProductJSON("p-2", "Macbook", 120000)[1:]
	_, err := ValidateProductFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
}

func TestValidateProductFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewProductValidator()

	raw := minimalValidProductJSON("p-3", "Macbook", 120000) + "{}"
	_, err := ValidateProductFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateProductFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	validator := NewProductValidator()

	// Не валиден: нулевая цена
	raw := minimalValidProductJSON("p-4", "Macbook", 0)
	_, err := ValidateProductFromJSON(ctx, validator, []byte(raw))
	if err == nil {
		t.Fatalf("expected domain validation error, got nil")
	}
}

// ---- helpers ----

func minimalValidProductJSON(id, name string, price int64) string {
	return `{
  "id": "` + id + `",
  "name": "` + name + `",
  "category": "laptop",
  "price": ` + strconv.FormatInt(price, 10) + `,
  "stock": 3,
  "photo_url": "https://cdn.example.com/` + id + `.jpg",
  "created_at": "2025-11-26T06:22:19Z",
  "updated_at": "2025-11-26T06:22:19Z"
}`
}
