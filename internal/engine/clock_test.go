package engine

import (
	"bytes"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// newTestLogger — логгер с отключенным выводом для тестов
func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

// fakeTicker - управляемый из теста тикер
type fakeTicker struct {
	ch chan time.Time
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }
func (t *fakeTicker) Stop()               {}

// fakeClock - детерминированные часы для тестов поллера и оповещений
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	ticker *fakeTicker
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{
		now:    start,
		ticker: &fakeTicker{ch: make(chan time.Time)},
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *fakeClock) NewTicker(time.Duration) Ticker {
	return c.ticker
}

// Tick эмулирует срабатывание таймера
func (c *fakeClock) Tick() {
	c.ticker.ch <- c.Now()
}
