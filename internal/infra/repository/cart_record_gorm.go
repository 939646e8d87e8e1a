package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRecordGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartRecordGormRepository(db *gorm.DB) domainrepo.CartRecordRepository {
	return &cartRecordGormRepository{db: db}
}

// セッションキーでスナップショットを1件取得
func (r *cartRecordGormRepository) FindBySessionKey(ctx context.Context, key string) (*model.CartRecord, error) {
	var rec model.CartRecord

	err := r.db.WithContext(ctx).
		Where("session_key = ?", key).
		First(&rec).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNotFound
		}
		return nil, err
	}

	return &rec, nil
}

// Upsert は同じキーの行を上書き保存
func (r *cartRecordGormRepository) Upsert(ctx context.Context, rec *model.CartRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"schema_version", "items", "updated_at"}),
		}).
		Create(rec).Error
}
