package upstream

import (
	"fmt"
)

// StatusError - транспортный сбой: сеть недоступна либо бекенд ответил
// неуспешным HTTP-статусом
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream: http %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("upstream: http %d", e.Code)
}

// AppError - прикладной сбой: успешный HTTP-статус с признаком ошибки
// в теле ответа
type AppError struct {
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("upstream: %s", e.Message)
}
