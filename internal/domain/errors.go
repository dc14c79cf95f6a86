package domain

import "errors"

var (
	// ErrOrderNotFound возвращается, если заказ не найден или помечен удалённым.
	ErrOrderNotFound = errors.New("order does not exist")
	// ErrStatusNotFound — переданный статус не входит в перечисление OrderStatus.
	ErrStatusNotFound = errors.New("order status does not exist")
	// ErrDuplicateStatus — новый статус совпадает с текущим.
	ErrDuplicateStatus = errors.New("duplicate order status")
	// ErrStatusTransition — переход отсутствует в графе статусов.
	ErrStatusTransition = errors.New("order status transition is not allowed")
	// ErrDuplicateProductID — в запросе на создание один productId встречается несколько раз.
	ErrDuplicateProductID = errors.New("duplicated product id")
	// ErrFulfillmentRejected — сервис товаров отклонил orderRequest.
	ErrFulfillmentRejected = errors.New("order request rejected by product service")
	// ErrItemDeleteFailed — не удалось пометить удалённой одну из позиций заказа.
	ErrItemDeleteFailed = errors.New("there is a order item that does not exist")
	// ErrProductNotFound — товар отсутствует в сервисе товаров.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductUnavailable — сервис товаров недоступен или вернул транспортную ошибку.
	ErrProductUnavailable = errors.New("product service unavailable")
	// ErrInvalidRequest — входные данные не прошли валидацию.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// IsNotFound проверяет, что ошибка означает отсутствие заказа.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound)
}
