package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// カートスナップショットの永続化を約束。
type CartRecordRepository interface {
	// 無ければErrNotFound。
	FindBySessionKey(ctx context.Context, key string) (*model.CartRecord, error)
	// 同じキーがあれば上書き。
	Upsert(ctx context.Context, rec *model.CartRecord) error
}
