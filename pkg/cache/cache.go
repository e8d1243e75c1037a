package cache

import (
	"context"
	"time"
)

// Cache - TTL кэш типа ключ-значение.
// Промах и ошибка бэкенда для вызывающего неразличимы: кэш не должен
// ломать запрос, максимум - лишний поход в БД
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// Nop - кэш-заглушка для тестов и отключенного кэширования
type Nop struct{}

func NewNop() Nop { return Nop{} }

func (Nop) Get(_ context.Context, _ string) ([]byte, bool) { return nil, false }

func (Nop) Set(_ context.Context, _ string, _ []byte, _ time.Duration) {}

func (Nop) Delete(_ context.Context, _ string) {}
