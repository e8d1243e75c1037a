package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Policy - ограниченная политика повторов с экспоненциальной задержкой.
// Оборачивает вызовы хранилища, чтобы переживать кратковременные сбои
type Policy struct {
	MaxTries        uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// DefaultPolicy - 3 попытки, задержка от 100мс до 1с
func DefaultPolicy() Policy {
	return Policy{
		MaxTries:        3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2.0,
	}
}

// Do - выполняет op с повторами по политике.
// Возвращает последнюю ошибку, если все попытки исчерпаны
func (p Policy) Do(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.Multiplier = p.Multiplier

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, op()
	}, backoff.WithBackOff(b), backoff.WithMaxTries(p.MaxTries))

	return err
}

// Permanent - помечает ошибку как неповторяемую: Do вернет ее сразу
func Permanent(err error) error {
	return backoff.Permanent(err)
}
