package ordersv1

// Коды в поле code ответа повторяют HTTP-статусы.
const (
	CodeOK          int32 = 200
	CodeBadRequest  int32 = 400
	CodeNotFound    int32 = 404
	CodeConflict    int32 = 409
	CodeInternal    int32 = 500
	CodeUnavailable int32 = 503
)

// MessageSuccess — сообщение успешного ответа.
const MessageSuccess = "Success"
