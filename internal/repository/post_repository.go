package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/userposts/internal/model"
)

// ErrDuplicateKey 主键冲突（帖子 ID 已存在）
var ErrDuplicateKey = errors.New("duplicate key")

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

type PostRepository interface {
	Create(ctx context.Context, post *model.UserPost) error
	GetByID(ctx context.Context, id string) (*model.UserPost, error)
	// ListWithMappings 返回全部帖子并预加载其响应记录，保持自然存储顺序
	ListWithMappings(ctx context.Context) ([]*model.UserPost, error)
	// DeleteCascade 在单个事务内删除帖子及其全部响应记录
	DeleteCascade(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.UserPost) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.UserPost, error) {
	var post model.UserPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListWithMappings(ctx context.Context) ([]*model.UserPost, error) {
	var posts []*model.UserPost
	err := r.db.WithContext(ctx).Preload("Mappings").Find(&posts).Error
	return posts, err
}

func (r *postRepository) DeleteCascade(ctx context.Context, id string) error {
	// 先删子表再删主表，两步在同一事务内原子完成，
	// 并发读不会看到只删一半的状态
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.UserPostMapping{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.UserPost{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
