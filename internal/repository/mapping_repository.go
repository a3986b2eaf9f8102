package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/userposts/internal/model"
)

type MappingRepository interface {
	Create(ctx context.Context, mapping *model.UserPostMapping) error
	ListByPostID(ctx context.Context, postID string) ([]*model.UserPostMapping, error)
}

type mappingRepository struct {
	db *gorm.DB
}

func NewMappingRepository(db *gorm.DB) MappingRepository { return &mappingRepository{db: db} }

func (r *mappingRepository) Create(ctx context.Context, mapping *model.UserPostMapping) error {
	return r.db.WithContext(ctx).Create(mapping).Error
}

func (r *mappingRepository) ListByPostID(ctx context.Context, postID string) ([]*model.UserPostMapping, error) {
	var res []*model.UserPostMapping
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).Find(&res).Error
	return res, err
}
