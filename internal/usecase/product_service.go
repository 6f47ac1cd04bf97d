package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/cache"
	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/google/uuid"
)

// ProductService — каталог: листинги и поиск через кэш, CRUD товаров,
// отзывы. Остаток товара руками не трогает — это территория StockLedger.
type ProductService struct {
	products ports.ProductRepository
	reviews  ports.ReviewRepository
	store    ports.CacheStore
	inv      *cache.Invalidator
	log      ports.Logger
	listTTL  time.Duration
}

func NewProductService(
	products ports.ProductRepository,
	reviews ports.ReviewRepository,
	store ports.CacheStore,
	inv *cache.Invalidator,
	log ports.Logger,
	listTTL time.Duration,
) *ProductService {
	return &ProductService{
		products: products,
		reviews:  reviews,
		store:    store,
		inv:      inv,
		log:      log,
		listTTL:  listTTL,
	}
}

const latestCount = 5

// Latest — пять самых свежих товаров (latest-products).
func (s *ProductService) Latest(ctx context.Context) ([]*domain.Product, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.KeyLatestProducts, 0,
		func(ctx context.Context) ([]*domain.Product, error) {
			return s.products.Latest(ctx, latestCount)
		})
}

// Categories — список категорий (categories).
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.KeyCategories, 0,
		func(ctx context.Context) ([]string, error) {
			return s.products.Categories(ctx)
		})
}

// All — весь каталог (all-products); админский листинг.
func (s *ProductService) All(ctx context.Context) ([]*domain.Product, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.KeyAllProducts, 0,
		func(ctx context.Context) ([]*domain.Product, error) {
			return s.products.All(ctx)
		})
}

// Get — товар по id (product-{id}).
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.ProductKey(id), 0,
		func(ctx context.Context) (*domain.Product, error) {
			product, err := s.products.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
			}
			return product, nil
		})
}

// SearchResult — страница выдачи плюс количество страниц.
type SearchResult struct {
	Products  []*domain.Product `json:"products"`
	TotalPage int               `json:"total_page"`
}

// Search — фильтрованная постраничная выдача. Ключ включает все параметры
// фильтра. Точечной инвалидации у поисковых ключей нет (их множество
// неперечислимо), поэтому срок их жизни ограничивается TTL.
func (s *ProductService) Search(ctx context.Context, f domain.ProductFilter) (SearchResult, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 {
		f.PerPage = 8
	}

	return cache.ReadThrough(ctx, s.store, s.log, cache.SearchKey(f), s.listTTL,
		func(ctx context.Context) (SearchResult, error) {
			products, total, err := s.products.Search(ctx, f)
			if err != nil {
				return SearchResult{}, err
			}
			totalPage := (total + f.PerPage - 1) / f.PerPage
			return SearchResult{Products: products, TotalPage: totalPage}, nil
		})
}

// CreateProductInput — новый товар.
type CreateProductInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int64  `json:"stock"`
	PhotoURL string `json:"photo_url"`
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	if in.Name == "" || in.Category == "" || in.Price <= 0 || in.Stock < 0 {
		return nil, fmt.Errorf("%w: name, category, positive price and non-negative stock are required", domain.ErrValidation)
	}

	product := &domain.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  strings.ToLower(in.Category),
		Price:     in.Price,
		Stock:     in.Stock,
		PhotoURL:  in.PhotoURL,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{Product: true, ProductIDs: []string{product.ID}, Admin: true})

	s.log.Infof(ctx, "product created id=%s name=%q", product.ID, product.Name)
	return product, nil
}

// UpdateProductInput — частичное обновление: нулевые поля не трогаются.
// Stock намеренно отсутствует: остаток меняет только StockLedger.
type UpdateProductInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	PhotoURL string `json:"photo_url"`
}

func (s *ProductService) Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Category != "" {
		product.Category = strings.ToLower(in.Category)
	}
	if in.Price > 0 {
		product.Price = in.Price
	}
	if in.PhotoURL != "" {
		product.PhotoURL = in.PhotoURL
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{Product: true, ProductIDs: []string{id}, Admin: true})
	return product, nil
}

// Delete — удаляет товар вместе с его отзывами.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	if err := s.reviews.DeleteByProduct(ctx, id); err != nil {
		return fmt.Errorf("delete reviews: %w", err)
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{
		Product:    true,
		ProductIDs: []string{id},
		Review:     true,
		Admin:      true,
	})

	s.log.Infof(ctx, "product deleted id=%s", id)
	return nil
}

// Reviews — отзывы товара (reviews-{productId}).
func (s *ProductService) Reviews(ctx context.Context, productID string) ([]*domain.Review, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.ReviewsKey(productID), s.listTTL,
		func(ctx context.Context) ([]*domain.Review, error) {
			return s.reviews.ListByProduct(ctx, productID)
		})
}

// AddReviewInput — новый отзыв.
type AddReviewInput struct {
	UserID  string `json:"user_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (s *ProductService) AddReview(ctx context.Context, productID string, in AddReviewInput) (*domain.Review, error) {
	if in.UserID == "" || in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: user id and rating 1..5 are required", domain.ErrValidation)
	}
	if len(in.Comment) > 750 {
		return nil, fmt.Errorf("%w: comment must not exceed 750 characters", domain.ErrValidation)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserID:    in.UserID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{
		Product:    true,
		ProductIDs: []string{productID},
		Review:     true,
		Admin:      true,
	})
	return review, nil
}

func (s *ProductService) DeleteReview(ctx context.Context, reviewID string) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("load review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %s: %w", reviewID, domain.ErrNotFound)
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{
		Product:    true,
		ProductIDs: []string{review.ProductID},
		Review:     true,
		Admin:      true,
	})
	return nil
}
