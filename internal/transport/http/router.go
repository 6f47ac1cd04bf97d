package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/Gunvolt24/wb_shop/internal/usecase"
	"github.com/Gunvolt24/wb_shop/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Handler struct {
	products *usecase.ProductService
	orders   *usecase.OrderService
	users    *usecase.UserService
	coupons  *usecase.CouponService
	payments *usecase.PaymentService
	stats    *usecase.StatsService
	log      ports.Logger
}

func NewHandler(
	products *usecase.ProductService,
	orders *usecase.OrderService,
	users *usecase.UserService,
	coupons *usecase.CouponService,
	payments *usecase.PaymentService,
	stats *usecase.StatsService,
	log ports.Logger,
) *Handler {
	return &Handler{
		products: products,
		orders:   orders,
		users:    users,
		coupons:  coupons,
		payments: payments,
		stats:    stats,
		log:      log,
	}
}

// NewRouter — собирает gin-роутер. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	product := api.Group("/product")
	product.GET("/latest", h.latestProducts)
	product.GET("/categories", h.productCategories)
	product.GET("/search", h.searchProducts)
	product.GET("/admin-products", h.adminOnly, h.allProducts)
	product.POST("/new", h.adminOnly, h.createProduct)
	product.GET("/:id", h.getProduct)
	product.PUT("/:id", h.adminOnly, h.updateProduct)
	product.DELETE("/:id", h.adminOnly, h.deleteProduct)
	product.GET("/:id/reviews", h.productReviews)
	product.POST("/:id/reviews", h.addReview)

	api.DELETE("/review/:id", h.deleteReview)

	order := api.Group("/order")
	order.POST("/new", h.createOrder)
	order.GET("/my", h.myOrders)
	order.GET("/all", h.adminOnly, h.allOrders)
	order.GET("/:id", h.getOrder)
	order.PUT("/:id", h.adminOnly, h.advanceOrder)
	order.PUT("/:id/cancel", h.cancelOrder)
	order.DELETE("/:id", h.adminOnly, h.deleteOrder)

	user := api.Group("/user")
	user.POST("/new", h.createUser)
	user.GET("/all", h.adminOnly, h.allUsers)
	user.GET("/:id", h.getUser)
	user.PUT("/:id", h.adminOnly, h.updateUserRole)
	user.DELETE("/:id", h.adminOnly, h.deleteUser)

	payment := api.Group("/payment")
	payment.POST("/new", h.createPayment)
	payment.POST("/discount", h.applyDiscount)

	coupon := payment.Group("/coupon")
	coupon.POST("/new", h.adminOnly, h.createCoupon)
	coupon.GET("/all", h.adminOnly, h.allCoupons)
	coupon.GET("/:id", h.adminOnly, h.getCoupon)
	coupon.PUT("/:id", h.adminOnly, h.updateCoupon)
	coupon.DELETE("/:id", h.adminOnly, h.deleteCoupon)

	dashboard := api.Group("/dashboard", h.adminOnly)
	dashboard.GET("/stats", h.dashboardStats)
	dashboard.GET("/pie", h.pieCharts)
	dashboard.GET("/bar", h.barCharts)
	dashboard.GET("/line", h.lineCharts)

	return r
}

// adminOnly — проверка роли по query-параметру id (внешняя аутентификация
// уже отдала клиенту его id; здесь только авторизация).
func (h *Handler) adminOnly(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "please log in first"})
		return
	}

	isAdmin, err := h.users.IsAdmin(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid id"})
			return
		}
		h.log.Errorf(c.Request.Context(), "admin check failed id=%s err=%v", id, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}
	if !isAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "admin only"})
		return
	}

	c.Next()
}

// ok — успешный ответ в общем конверте.
func ok(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// fail — маппинг бизнес-ошибок на HTTP-коды. Наружу уходит только
// сообщение, детали хранилища остаются в логах.
func (h *Handler) fail(c *gin.Context, err error) {
	var oos *domain.OutOfStockError

	switch {
	case errors.As(err, &oos):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": oos.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
	default:
		h.log.Errorf(c.Request.Context(), "request failed path=%s err=%v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}
