package rest

import (
	"net/http"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createPayment(c *gin.Context) {
	var payment domain.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	if err := h.payments.Create(c.Request.Context(), &payment); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"payment": payment})
}

// applyDiscount — размер скидки по коду купона (query coupon).
func (h *Handler) applyDiscount(c *gin.Context) {
	code := c.Query("coupon")
	if code == "" {
		badRequest(c, "coupon code is required")
		return
	}

	discount, err := h.coupons.ApplyDiscount(c.Request.Context(), code)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"discount": discount})
}

func (h *Handler) createCoupon(c *gin.Context) {
	var body struct {
		Code   string `json:"code"`
		Amount int64  `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	coupon, err := h.coupons.Create(c.Request.Context(), body.Code, body.Amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"coupon": coupon})
}

func (h *Handler) allCoupons(c *gin.Context) {
	coupons, err := h.coupons.All(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"coupons": coupons})
}

func (h *Handler) getCoupon(c *gin.Context) {
	coupon, err := h.coupons.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"coupon": coupon})
}

func (h *Handler) updateCoupon(c *gin.Context) {
	var body struct {
		Code   string `json:"code"`
		Amount int64  `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	coupon, err := h.coupons.Update(c.Request.Context(), c.Param("id"), body.Code, body.Amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"coupon": coupon})
}

func (h *Handler) deleteCoupon(c *gin.Context) {
	if err := h.coupons.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "coupon deleted"})
}
