package memory_run_repo

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// txManager выполняет функцию без транзакции: памяти откатывать нечего
type txManager struct{}

func NewTxManager() trm.Manager {
	return txManager{}
}

func (txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
