package cache

import (
	"testing"

	"github.com/Gunvolt24/wb_shop/internal/domain"
)

// Формат ключей зафиксирован: его менять нельзя, пока жив прогретый кэш.
func TestKeys_Format(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{KeyAllProducts, "all-products"},
		{KeyLatestProducts, "latest-products"},
		{KeyCategories, "categories"},
		{KeyAllOrders, "all-orders"},
		{KeyAllUsers, "all-users"},
		{KeyAllCoupons, "all-coupons"},
		{KeyAdminStats, "admin-stats"},
		{KeyAdminPie, "admin-pie-charts"},
		{KeyAdminBar, "admin-bar-charts"},
		{KeyAdminLine, "admin-line-charts"},
		{ProductKey("p-1"), "product-p-1"},
		{OrderKey("o-1"), "order-o-1"},
		{MyOrdersKey("u-1"), "my-orders-u-1"},
		{UserKey("u-1"), "user-u-1"},
		{CouponKey("c-1"), "coupon-c-1"},
		{ReviewsKey("p-1"), "reviews-p-1"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("key mismatch: got %q, want %q", c.got, c.want)
		}
	}
}

func TestSearchKey_IncludesAllFilterParams(t *testing.T) {
	f := domain.ProductFilter{
		Search:   "phone",
		Sort:     "asc",
		Category: "electronics",
		MaxPrice: 5000,
		Page:     2,
	}
	want := "products-search-phone:asc:electronics:5000:2"
	if got := SearchKey(f); got != want {
		t.Fatalf("SearchKey: got %q, want %q", got, want)
	}

	// Другая страница — другой ключ, иначе страницы затирали бы друг друга.
	f2 := f
	f2.Page = 3
	if SearchKey(f) == SearchKey(f2) {
		t.Fatalf("different pages must produce different keys")
	}
}

// Разделитель в значениях полей не должен склеивать разные фильтры
// в один ключ — иначе чужая закэшированная выдача уйдёт не тому запросу.
func TestSearchKey_NoCollisionsAcrossFields(t *testing.T) {
	a := domain.ProductFilter{Search: "a-", Category: "c", Page: 1}
	b := domain.ProductFilter{Search: "a", Category: "-c", Page: 1}
	if SearchKey(a) == SearchKey(b) {
		t.Fatalf("filters %+v and %+v collide on key %q", a, b, SearchKey(a))
	}

	c := domain.ProductFilter{Search: "x:y", Page: 1}
	d := domain.ProductFilter{Search: "x", Category: "y", Page: 1}
	if SearchKey(c) == SearchKey(d) {
		t.Fatalf("filters %+v and %+v collide on key %q", c, d, SearchKey(c))
	}
}

func TestAdminKeys_CoversAllDashboards(t *testing.T) {
	keys := AdminKeys()
	want := []string{"admin-stats", "admin-pie-charts", "admin-bar-charts", "admin-line-charts"}
	if len(keys) != len(want) {
		t.Fatalf("AdminKeys: got %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("AdminKeys[%d]: got %q, want %q", i, keys[i], want[i])
		}
	}
}
