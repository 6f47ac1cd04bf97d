// Пакет cache — ядро кэш-слоя: схема ключей, чтение через кэш
// и инвалидация по флагам доменов. Само хранилище (память/Redis)
// скрыто за ports.CacheStore.
package cache

import (
	"fmt"
	"net/url"

	"github.com/Gunvolt24/wb_shop/internal/domain"
)

// Ключи кэша — единое место, чтобы не расползались по коду.
// Формат зафиксирован: с ним совместим уже прогретый кэш.
const (
	KeyAllProducts    = "all-products"
	KeyLatestProducts = "latest-products"
	KeyCategories     = "categories"
	KeyAllOrders      = "all-orders"
	KeyAllUsers       = "all-users"
	KeyAllCoupons     = "all-coupons"
	KeyAdminStats     = "admin-stats"
	KeyAdminPie       = "admin-pie-charts"
	KeyAdminBar       = "admin-bar-charts"
	KeyAdminLine      = "admin-line-charts"
)

func ProductKey(id string) string        { return "product-" + id }
func OrderKey(id string) string          { return "order-" + id }
func MyOrdersKey(userID string) string   { return "my-orders-" + userID }
func UserKey(id string) string           { return "user-" + id }
func CouponKey(id string) string         { return "coupon-" + id }
func ReviewsKey(productID string) string { return "reviews-" + productID }

// SearchKey — ключ постраничной выдачи поиска. Все дискриминирующие
// параметры входят в ключ, иначе страницы затирали бы друг друга.
// Строковые поля экранируются, а разделитель ":" в экранированном виде
// встретиться не может — разные фильтры не склеиваются в один ключ.
func SearchKey(f domain.ProductFilter) string {
	return fmt.Sprintf("products-search-%s:%s:%s:%d:%d",
		url.QueryEscape(f.Search), url.QueryEscape(string(f.Sort)),
		url.QueryEscape(f.Category), f.MaxPrice, f.Page)
}

// AdminKeys — все четыре агрегатных ключа дашборда; id-скоупинга у них нет.
func AdminKeys() []string {
	return []string{KeyAdminStats, KeyAdminPie, KeyAdminBar, KeyAdminLine}
}
