package engine

import (
	"time"
)

// Clock абстрагирует источник времени, чтобы поллер и алерты были
// детерминированы в тестах
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker - минимальный контракт периодического таймера
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realClock struct{}

// NewClock возвращает часы на основе пакета time
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(d)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (t *realTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *realTicker) Stop() {
	t.ticker.Stop()
}
