package usecase

import (
	"context"
	"math"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/cache"
	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
)

// StatsService — админские агрегаты дашборда. Все четыре отчёта читаются
// через кэш под фиксированными ключами без id-скоупинга и сбрасываются
// только флагом Admin — его обязан выставлять каждый write-путь,
// способный повлиять на цифры.
type StatsService struct {
	stats ports.StatsRepository
	store ports.CacheStore
	log   ports.Logger
	ttl   time.Duration
}

func NewStatsService(stats ports.StatsRepository, store ports.CacheStore, log ports.Logger, ttl time.Duration) *StatsService {
	return &StatsService{stats: stats, store: store, log: log, ttl: ttl}
}

// DashboardStats — сводка: счётчики, динамика к прошлому месяцу,
// полугодовые ряды и последние заказы.
type DashboardStats struct {
	Counts        domain.Counts          `json:"counts"`
	ChangePercent map[string]float64     `json:"change_percent"`
	OrderChart    []int64                `json:"order_chart"`
	RevenueChart  []int64                `json:"revenue_chart"`
	CategoryCount []domain.CategoryCount `json:"category_count"`
	GenderRatio   map[string]int64       `json:"gender_ratio"`
	LatestOrders  []*domain.Order        `json:"latest_orders"`
}

func (s *StatsService) Dashboard(ctx context.Context) (DashboardStats, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.KeyAdminStats, s.ttl,
		func(ctx context.Context) (DashboardStats, error) {
			now := time.Now().UTC()
			monthAgo := monthStart(now, -1)

			counts, err := s.stats.Counts(ctx)
			if err != nil {
				return DashboardStats{}, err
			}
			orders, err := s.stats.OrdersSince(ctx, now.AddDate(0, -6, 0))
			if err != nil {
				return DashboardStats{}, err
			}
			products, err := s.stats.ProductsCreatedSince(ctx, monthAgo)
			if err != nil {
				return DashboardStats{}, err
			}
			users, err := s.stats.UsersCreatedSince(ctx, monthAgo)
			if err != nil {
				return DashboardStats{}, err
			}
			categories, err := s.stats.CategoryCounts(ctx)
			if err != nil {
				return DashboardStats{}, err
			}
			male, female, err := s.stats.GenderCounts(ctx)
			if err != nil {
				return DashboardStats{}, err
			}
			latest, err := s.stats.LatestOrders(ctx, 4)
			if err != nil {
				return DashboardStats{}, err
			}

			thisStart := monthStart(now, 0)
			change := map[string]float64{
				"orders":   changePercent(countSince(orderTimes(orders), thisStart), countBetween(orderTimes(orders), monthAgo, thisStart)),
				"revenue":  changePercent(sumRevenueSince(orders, thisStart), sumRevenueBetween(orders, monthAgo, thisStart)),
				"products": changePercent(countSince(products, thisStart), countBetween(products, monthAgo, thisStart)),
				"users":    changePercent(countSince(users, thisStart), countBetween(users, monthAgo, thisStart)),
			}

			return DashboardStats{
				Counts:        counts,
				ChangePercent: change,
				OrderChart:    monthlyCounts(orderTimes(orders), now, 6),
				RevenueChart:  monthlyOrderSums(orders, now, 6, func(p domain.OrderPoint) int64 { return p.Total }),
				CategoryCount: categories,
				GenderRatio:   map[string]int64{"male": male, "female": female},
				LatestOrders:  latest,
			}, nil
		})
}

// PieCharts — распределения для круговых диаграмм.
type PieCharts struct {
	OrderFulfillment  map[string]int64       `json:"order_fulfillment"`
	ProductCategories []domain.CategoryCount `json:"product_categories"`
	StockAvailability map[string]int64       `json:"stock_availability"`
	UserRoles         map[string]int64       `json:"user_roles"`
}

func (s *StatsService) Pie(ctx context.Context) (PieCharts, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.KeyAdminPie, s.ttl,
		func(ctx context.Context) (PieCharts, error) {
			processing, shipped, delivered, err := s.stats.StatusCounts(ctx)
			if err != nil {
				return PieCharts{}, err
			}
			categories, err := s.stats.CategoryCounts(ctx)
			if err != nil {
				return PieCharts{}, err
			}
			inStock, outOfStock, err := s.stats.StockAvailability(ctx)
			if err != nil {
				return PieCharts{}, err
			}
			admins, users, err := s.stats.RoleCounts(ctx)
			if err != nil {
				return PieCharts{}, err
			}

			return PieCharts{
				OrderFulfillment: map[string]int64{
					"processing": processing,
					"shipped":    shipped,
					"delivered":  delivered,
				},
				ProductCategories: categories,
				StockAvailability: map[string]int64{"in_stock": inStock, "out_of_stock": outOfStock},
				UserRoles:         map[string]int64{"admin": admins, "user": users},
			}, nil
		})
}

// BarCharts — товары/пользователи за 6 месяцев, заказы за 12.
type BarCharts struct {
	Products []int64 `json:"products"`
	Users    []int64 `json:"users"`
	Orders   []int64 `json:"orders"`
}

func (s *StatsService) Bar(ctx context.Context) (BarCharts, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.KeyAdminBar, s.ttl,
		func(ctx context.Context) (BarCharts, error) {
			now := time.Now().UTC()

			products, err := s.stats.ProductsCreatedSince(ctx, now.AddDate(0, -6, 0))
			if err != nil {
				return BarCharts{}, err
			}
			users, err := s.stats.UsersCreatedSince(ctx, now.AddDate(0, -6, 0))
			if err != nil {
				return BarCharts{}, err
			}
			orders, err := s.stats.OrdersSince(ctx, now.AddDate(0, -12, 0))
			if err != nil {
				return BarCharts{}, err
			}

			return BarCharts{
				Products: monthlyCounts(products, now, 6),
				Users:    monthlyCounts(users, now, 6),
				Orders:   monthlyCounts(orderTimes(orders), now, 12),
			}, nil
		})
}

// LineCharts — годовые ряды: регистрации, новые товары, скидка и выручка.
// Выручка и скидка учитываются только по доставленным заказам.
type LineCharts struct {
	Users    []int64 `json:"users"`
	Products []int64 `json:"products"`
	Discount []int64 `json:"discount"`
	Revenue  []int64 `json:"revenue"`
}

func (s *StatsService) Line(ctx context.Context) (LineCharts, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.KeyAdminLine, s.ttl,
		func(ctx context.Context) (LineCharts, error) {
			now := time.Now().UTC()
			yearAgo := now.AddDate(0, -12, 0)

			users, err := s.stats.UsersCreatedSince(ctx, yearAgo)
			if err != nil {
				return LineCharts{}, err
			}
			products, err := s.stats.ProductsCreatedSince(ctx, yearAgo)
			if err != nil {
				return LineCharts{}, err
			}
			orders, err := s.stats.OrdersSince(ctx, yearAgo)
			if err != nil {
				return LineCharts{}, err
			}

			delivered := make([]domain.OrderPoint, 0, len(orders))
			for _, p := range orders {
				if p.Status == domain.StatusDelivered {
					delivered = append(delivered, p)
				}
			}

			return LineCharts{
				Users:    monthlyCounts(users, now, 12),
				Products: monthlyCounts(products, now, 12),
				Discount: monthlyOrderSums(delivered, now, 12, func(p domain.OrderPoint) int64 { return p.Discount }),
				Revenue:  monthlyOrderSums(delivered, now, 12, func(p domain.OrderPoint) int64 { return p.Total }),
			}, nil
		})
}

// ------чистые редьюсеры (без состояния)------

// changePercent — динамика к прошлому периоду; при нулевой базе
// возвращает рост в «разах ста», как в исходнике.
func changePercent(thisMonth, lastMonth int64) float64 {
	if lastMonth == 0 {
		return float64(thisMonth * 100)
	}
	percent := float64(thisMonth) / float64(lastMonth) * 100
	return math.Round(percent*100) / 100
}

// monthlyCounts — счётчик событий по месяцам, хвост массива — текущий месяц.
func monthlyCounts(times []time.Time, now time.Time, length int) []int64 {
	data := make([]int64, length)
	for _, t := range times {
		diff := monthDiff(now, t)
		if diff >= 0 && diff < length {
			data[length-1-diff]++
		}
	}
	return data
}

// monthlyOrderSums — сумма поля заказа по месяцам.
func monthlyOrderSums(points []domain.OrderPoint, now time.Time, length int, value func(domain.OrderPoint) int64) []int64 {
	data := make([]int64, length)
	for _, p := range points {
		diff := monthDiff(now, p.CreatedAt)
		if diff >= 0 && diff < length {
			data[length-1-diff] += value(p)
		}
	}
	return data
}

func monthDiff(now, t time.Time) int {
	return (now.Year()-t.Year())*12 + int(now.Month()) - int(t.Month())
}

func monthStart(now time.Time, offset int) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)
}

func orderTimes(points []domain.OrderPoint) []time.Time {
	times := make([]time.Time, 0, len(points))
	for _, p := range points {
		times = append(times, p.CreatedAt)
	}
	return times
}

func countSince(times []time.Time, since time.Time) int64 {
	var n int64
	for _, t := range times {
		if !t.Before(since) {
			n++
		}
	}
	return n
}

func countBetween(times []time.Time, from, to time.Time) int64 {
	var n int64
	for _, t := range times {
		if !t.Before(from) && t.Before(to) {
			n++
		}
	}
	return n
}

func sumRevenueSince(points []domain.OrderPoint, since time.Time) int64 {
	var sum int64
	for _, p := range points {
		if !p.CreatedAt.Before(since) {
			sum += p.Total
		}
	}
	return sum
}

func sumRevenueBetween(points []domain.OrderPoint, from, to time.Time) int64 {
	var sum int64
	for _, p := range points {
		if !p.CreatedAt.Before(from) && p.CreatedAt.Before(to) {
			sum += p.Total
		}
	}
	return sum
}
