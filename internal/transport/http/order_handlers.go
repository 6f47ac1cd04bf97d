package rest

import (
	"net/http"

	"github.com/Gunvolt24/wb_shop/internal/usecase"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createOrder(c *gin.Context) {
	var in usecase.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	order, err := h.orders.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) myOrders(c *gin.Context) {
	userID := c.Query("id")
	if userID == "" {
		badRequest(c, "user id is required")
		return
	}

	orders, err := h.orders.MyOrders(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) allOrders(c *gin.Context) {
	orders, err := h.orders.AllOrders(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"order": order})
}

func (h *Handler) advanceOrder(c *gin.Context) {
	order, err := h.orders.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"order": order})
}

// cancelOrder — отмена своего заказа; актор приходит в query id,
// авторизация (владелец или админ) выполняется в usecase.
func (h *Handler) cancelOrder(c *gin.Context) {
	actorID := c.Query("id")
	if actorID == "" {
		badRequest(c, "user id is required")
		return
	}

	if err := h.orders.Cancel(c.Request.Context(), c.Param("id"), actorID); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "order cancelled"})
}

func (h *Handler) deleteOrder(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "order deleted"})
}
