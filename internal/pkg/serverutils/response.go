package serverutils

// Response is the success envelope shared by every endpoint.
type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{Message: message, Data: data}
}

// ErrorBody matches the hub's error wire contract: a single detail string,
// e.g. {"detail": "Email already registered"}.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func ErrorResponse(detail string) ErrorBody {
	return ErrorBody{Detail: detail}
}
