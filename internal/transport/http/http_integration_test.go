//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_shop/internal/cache"
	cachemem "github.com/Gunvolt24/wb_shop/internal/cache/memory"
	"github.com/Gunvolt24/wb_shop/internal/domain"
	pgrepo "github.com/Gunvolt24/wb_shop/internal/repo/postgres"
	"github.com/Gunvolt24/wb_shop/internal/testutil"
	rest "github.com/Gunvolt24/wb_shop/internal/transport/http"
	"github.com/Gunvolt24/wb_shop/internal/usecase"
	"github.com/Gunvolt24/wb_shop/pkg/logger"
	"github.com/Gunvolt24/wb_shop/pkg/validate"
)

// поднимает Postgres, собирает полный стек сервисов и тестовый HTTP-сервер
func newServerTC(t *testing.T) (context.Context, *pgxpool.Pool, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	t.Cleanup(cancel)

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	logg, closeLog, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeLog() })

	store := cachemem.NewStore(time.Minute)
	inv := cache.NewInvalidator(store, logg)

	products := pgrepo.NewProductRepository(pool)
	reviews := pgrepo.NewReviewRepository(pool)
	orders := pgrepo.NewOrderRepository(pool)
	payments := pgrepo.NewPaymentRepository(pool)
	users := pgrepo.NewUserRepository(pool)
	coupons := pgrepo.NewCouponRepository(pool)
	stats := pgrepo.NewStatsRepository(pool)

	ledger := usecase.NewStockLedger(products, logg)

	h := rest.NewHandler(
		usecase.NewProductService(products, reviews, store, inv, logg, time.Minute),
		usecase.NewOrderService(orders, payments, users, ledger, store, inv, logg, time.Minute),
		usecase.NewUserService(users, store, inv, logg, time.Minute),
		usecase.NewCouponService(coupons, store, inv, logg, time.Minute),
		usecase.NewPaymentService(payments, orders, validate.NewPaymentValidator(), logg),
		usecase.NewStatsService(stats, store, logg, time.Minute),
		logg,
	)

	ts := httptest.NewServer(rest.NewRouter(h, ""))
	t.Cleanup(ts.Close)

	return ctx, pool, ts
}

func getJSON(t *testing.T, url string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	return got
}

func postJSON(t *testing.T, url string, body any, wantStatus int) map[string]any {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	return got
}

// 1) GET /api/v1/product/:id — 200 для существующего, 404 для чужого id.
func TestHTTP_GetProduct_TC(t *testing.T) {
	ctx, pool, ts := newServerTC(t)

	p := testutil.MakeProduct(testutil.WithPrice(1500))
	require.NoError(t, pgrepo.NewProductRepository(pool).Create(ctx, &p))

	got := getJSON(t, ts.URL+"/api/v1/product/"+p.ID, http.StatusOK)
	require.Equal(t, true, got["success"])
	product := got["product"].(map[string]any)
	require.Equal(t, p.Name, product["name"])
	require.Equal(t, float64(1500), product["price"])

	notFound := getJSON(t, ts.URL+"/api/v1/product/no-such-id", http.StatusNotFound)
	require.Equal(t, false, notFound["success"])
}

// 2) Полный цикл заказа: POST /order/new списывает остаток,
// затем заказ читается по id и попадает в "мои заказы".
func TestHTTP_CreateOrder_FullFlow_TC(t *testing.T) {
	ctx, pool, ts := newServerTC(t)

	productsRepo := pgrepo.NewProductRepository(pool)

	u := testutil.MakeUser()
	require.NoError(t, pgrepo.NewUserRepository(pool).Create(ctx, &u))
	p := testutil.MakeProduct(testutil.WithStock(5), testutil.WithPrice(1000))
	require.NoError(t, productsRepo.Create(ctx, &p))

	in := usecase.CreateOrderInput{
		UserID: u.ID,
		ShippingInfo: domain.ShippingInfo{
			Address: "Main st 1", City: "Metropolis", State: "NA", Country: "US", PinCode: "000000",
		},
		Items:           []domain.OrderItem{{ProductID: p.ID, Quantity: 2}},
		Tax:             100,
		ShippingCharges: 50,
	}
	created := postJSON(t, ts.URL+"/api/v1/order/new", in, http.StatusCreated)
	require.Equal(t, true, created["success"])

	order := created["order"].(map[string]any)
	orderID := order["id"].(string)
	require.Equal(t, float64(2000+100+50), order["total"])

	// остаток списан
	gotP, err := productsRepo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, gotP.Stock)

	// заказ читается по id
	byID := getJSON(t, ts.URL+"/api/v1/order/"+orderID, http.StatusOK)
	require.Equal(t, true, byID["success"])

	// и виден в списке пользователя
	mine := getJSON(t, ts.URL+"/api/v1/order/my?id="+u.ID, http.StatusOK)
	require.Len(t, mine["orders"].([]any), 1)
}

// 3) Заказ на больший, чем остаток, объём — 400 и ничего не списывается.
func TestHTTP_CreateOrder_OutOfStock_TC(t *testing.T) {
	ctx, pool, ts := newServerTC(t)

	productsRepo := pgrepo.NewProductRepository(pool)

	u := testutil.MakeUser()
	require.NoError(t, pgrepo.NewUserRepository(pool).Create(ctx, &u))
	p := testutil.MakeProduct(testutil.WithStock(1))
	require.NoError(t, productsRepo.Create(ctx, &p))

	in := usecase.CreateOrderInput{
		UserID: u.ID,
		Items:  []domain.OrderItem{{ProductID: p.ID, Quantity: 3}},
	}
	got := postJSON(t, ts.URL+"/api/v1/order/new", in, http.StatusBadRequest)
	require.Equal(t, false, got["success"])
	require.Contains(t, got["error"], "out of stock")

	gotP, err := productsRepo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, gotP.Stock)
}

// 4) Админ-маршруты: 401 без id, 403 для обычного пользователя, 200 для админа.
func TestHTTP_Dashboard_Authorization_TC(t *testing.T) {
	ctx, pool, ts := newServerTC(t)

	usersRepo := pgrepo.NewUserRepository(pool)
	admin := testutil.MakeUser(testutil.AsAdmin())
	require.NoError(t, usersRepo.Create(ctx, &admin))
	plain := testutil.MakeUser()
	require.NoError(t, usersRepo.Create(ctx, &plain))

	noID := getJSON(t, ts.URL+"/api/v1/dashboard/stats", http.StatusUnauthorized)
	require.Equal(t, "please log in first", noID["error"])

	forbidden := getJSON(t, ts.URL+"/api/v1/dashboard/stats?id="+plain.ID, http.StatusForbidden)
	require.Equal(t, "admin only", forbidden["error"])

	okResp := getJSON(t, ts.URL+"/api/v1/dashboard/stats?id="+admin.ID, http.StatusOK)
	require.Equal(t, true, okResp["success"])
	require.NotNil(t, okResp["stats"])
}

// 5) POST /payment/discount — сумма по известному купону, 400 по чужому коду.
func TestHTTP_ApplyDiscount_TC(t *testing.T) {
	ctx, pool, ts := newServerTC(t)

	cpn := testutil.MakeCoupon(250)
	require.NoError(t, pgrepo.NewCouponRepository(pool).Create(ctx, &cpn))

	got := postJSON(t, ts.URL+"/api/v1/payment/discount?coupon="+cpn.Code, nil, http.StatusOK)
	require.Equal(t, true, got["success"])
	require.Equal(t, float64(250), got["discount"])

	bad := postJSON(t, ts.URL+"/api/v1/payment/discount?coupon=NOPE", nil, http.StatusBadRequest)
	require.Equal(t, false, bad["success"])
}

// 6) /ping, /metrics и конверт ошибок для неизвестных маршрутов/методов.
func TestHTTP_Health_Metrics_And_404_TC(t *testing.T) {
	_, _, ts := newServerTC(t)

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "pong", string(body))

	respM, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer respM.Body.Close()
	require.Equal(t, http.StatusOK, respM.StatusCode)
	metricsBody, err := io.ReadAll(respM.Body)
	require.NoError(t, err)
	require.NotEmpty(t, metricsBody)

	got404 := getJSON(t, ts.URL+"/no/such/route", http.StatusNotFound)
	require.Equal(t, "route not found", got404["error"])

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/ping", nil)
	resp405, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp405.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp405.StatusCode)
}
