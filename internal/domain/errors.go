package domain

import (
	"errors"
	"fmt"
)

// Бизнес-ошибки ядра. Транспорт маппит их на HTTP-коды,
// наружу уходит только сообщение без деталей хранилища.
var (
	ErrNotFound     = errors.New("not found")     // 404
	ErrValidation   = errors.New("validation")    // 400
	ErrConflict     = errors.New("conflict")      // 409: недопустимый переход статуса
	ErrUnauthorized = errors.New("unauthorized")  // 401: не владелец и не админ
)

// OutOfStockError — нехватка остатка; несёт имя товара для ответа клиенту.
type OutOfStockError struct {
	ProductName string
	Requested   int64
	Available   int64
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%s is out of stock (requested %d, available %d)",
		e.ProductName, e.Requested, e.Available)
}

// IsOutOfStock — удобная проверка для транспорта и тестов.
func IsOutOfStock(err error) bool {
	var oos *OutOfStockError
	return errors.As(err, &oos)
}
