package repository

import (
	"app/internal/domain/model"
	"context"
)

// お問い合わせの永続化（保存のみ）を約束。
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
}
