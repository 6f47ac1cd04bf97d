package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/Gunvolt24/wb_shop/pkg/metrics"
)

// StockLedger — единственное место, где меняется остаток товара.
// Резервирование оптимистичное и синхронное: без блокировок и без
// транзакции между позициями. Конкурентные заказы на один товар могут
// оба прочитать остаток до декремента — эта гонка осознанно принята.
type StockLedger struct {
	products ports.ProductRepository
	log      ports.Logger
}

func NewStockLedger(products ports.ProductRepository, log ports.Logger) *StockLedger {
	return &StockLedger{products: products, log: log}
}

// Reserve — списывает остаток по каждой позиции в порядке списка и
// возвращает позиции, дополненные актуальным именем и ценой товара.
// Любая позиция с нехваткой останавливает операцию с OutOfStockError;
// уже списанные позиции при этом НЕ откатываются (задокументированное
// ограничение, унаследованное от исходной реализации).
func (l *StockLedger) Reserve(ctx context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	reserved := make([]domain.OrderItem, 0, len(items))

	for _, item := range items {
		product, err := l.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load product %s: %w", item.ProductID, err)
		}
		if product == nil {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, domain.ErrNotFound)
		}
		if product.Stock < item.Quantity {
			metrics.StockReservations.WithLabelValues("out_of_stock").Inc()
			return nil, &domain.OutOfStockError{
				ProductName: product.Name,
				Requested:   item.Quantity,
				Available:   product.Stock,
			}
		}

		product.Stock -= item.Quantity
		if err := l.products.Save(ctx, product); err != nil {
			return nil, fmt.Errorf("save product %s: %w", product.ID, err)
		}
		metrics.StockReservations.WithLabelValues("reserve").Inc()

		reserved = append(reserved, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	return reserved, nil
}

// Release — симметричный возврат остатка. Идемпотентности у самого
// леджера нет: повторный вызов снова увеличит остаток. За «не больше
// одного раза на заказ» отвечает жизненный цикл заказа (проверка статуса
// до вызова).
func (l *StockLedger) Release(ctx context.Context, items []domain.OrderItem) error {
	for _, item := range items {
		product, err := l.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("load product %s: %w", item.ProductID, err)
		}
		if product == nil {
			// Товар могли удалить, пока заказ жил — возвращать некуда.
			l.log.Warnf(ctx, "stock release skipped: product %s no longer exists", item.ProductID)
			continue
		}

		product.Stock += item.Quantity
		if err := l.products.Save(ctx, product); err != nil {
			return fmt.Errorf("save product %s: %w", product.ID, err)
		}
		metrics.StockReservations.WithLabelValues("release").Inc()
	}
	return nil
}
