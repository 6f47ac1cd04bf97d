package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) pieCharts(c *gin.Context) {
	charts, err := h.stats.Pie(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"charts": charts})
}

func (h *Handler) barCharts(c *gin.Context) {
	charts, err := h.stats.Bar(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"charts": charts})
}

func (h *Handler) lineCharts(c *gin.Context) {
	charts, err := h.stats.Line(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"charts": charts})
}
