package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"

	"gorm.io/gorm"
)

type contactGormRepository struct {
	db *gorm.DB
}

// DI
func NewContactGormRepository(db *gorm.DB) domainrepo.ContactRepository {
	return &contactGormRepository{db: db}
}

// Create はお問い合わせを1件保存
func (r *contactGormRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}
