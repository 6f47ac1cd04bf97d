package domain

import "time"

// SortOrder — направление сортировки по цене в поиске каталога.
type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ProductFilter — параметры поиска по каталогу. Нулевые значения — «не фильтровать».
type ProductFilter struct {
	Search   string
	Category string
	MaxPrice int64
	Sort     SortOrder
	Page     int
	PerPage  int
}

// Counts — суммарные показатели для дашборда.
type Counts struct {
	Products int64 `json:"products"`
	Users    int64 `json:"users"`
	Orders   int64 `json:"orders"`
	Revenue  int64 `json:"revenue"`
}

// OrderPoint — срез заказа для помесячных рядов.
type OrderPoint struct {
	CreatedAt time.Time
	Total     int64
	Discount  int64
	Status    OrderStatus
}

// CategoryCount — количество товаров в категории.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
