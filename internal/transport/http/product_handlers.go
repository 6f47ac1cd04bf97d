package rest

import (
	"net/http"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/usecase"
	"github.com/Gunvolt24/wb_shop/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) latestProducts(c *gin.Context) {
	products, err := h.products.Latest(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"products": products})
}

func (h *Handler) productCategories(c *gin.Context) {
	categories, err := h.products.Categories(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) allProducts(c *gin.Context) {
	products, err := h.products.All(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"products": products})
}

// searchProducts — фильтры каталога из query: search, category, price
// (верхняя граница), sort (asc|desc) и page.
func (h *Handler) searchProducts(c *gin.Context) {
	f := domain.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     domain.SortOrder(c.Query("sort")),
	}
	f.MaxPrice = httpx.QueryPositiveInt64(c, "price")
	f.Page = httpx.QueryPositiveInt(c, "page", 1)

	result, err := h.products.Search(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"products": result.Products, "total_page": result.TotalPage})
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"product": product})
}

func (h *Handler) createProduct(c *gin.Context) {
	var in usecase.CreateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	product, err := h.products.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"product": product})
}

func (h *Handler) updateProduct(c *gin.Context) {
	var in usecase.UpdateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"product": product})
}

func (h *Handler) deleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *Handler) productReviews(c *gin.Context) {
	reviews, err := h.products.Reviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) addReview(c *gin.Context) {
	var in usecase.AddReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	review, err := h.products.AddReview(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"review": review})
}

func (h *Handler) deleteReview(c *gin.Context) {
	if err := h.products.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "review deleted"})
}
