package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/d60-Lab/userposts/internal/model"
	"github.com/d60-Lab/userposts/internal/repository"
	"github.com/d60-Lab/userposts/pkg/logger"
)

var (
	// ErrPostExists 帖子 ID 已被占用
	ErrPostExists = errors.New("post with this ID already exists")
	// ErrPostNotFound 帖子不存在
	ErrPostNotFound = errors.New("post not found")
)

type CreatePostInput struct {
	ID       string
	UserID   string
	Content  string
	MediaURL *string
}

type AddResponseInput struct {
	PostID   string
	UserID   string
	Comments *string
	Liked    bool
	Disliked bool
}

// PostService 帖子及响应记录的业务入口
type PostService interface {
	CreatePost(ctx context.Context, in CreatePostInput) (*model.UserPost, error)
	ListPosts(ctx context.Context) ([]*model.UserPost, error)
	AddResponse(ctx context.Context, in AddResponseInput) (*model.UserPostMapping, error)
	DeletePost(ctx context.Context, id string) error
}

type postService struct {
	postRepo    repository.PostRepository
	mappingRepo repository.MappingRepository
}

func NewPostService(postRepo repository.PostRepository, mappingRepo repository.MappingRepository) PostService {
	return &postService{postRepo: postRepo, mappingRepo: mappingRepo}
}

func (s *postService) CreatePost(ctx context.Context, in CreatePostInput) (*model.UserPost, error) {
	// 显式前置查重，主键约束兜底
	if _, err := s.postRepo.GetByID(ctx, in.ID); err == nil {
		return nil, ErrPostExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	post := &model.UserPost{
		ID:       in.ID,
		UserID:   in.UserID,
		Content:  in.Content,
		MediaURL: in.MediaURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrPostExists
		}
		return nil, err
	}
	logger.Info("post created", zap.String("post_id", post.ID), zap.String("user_id", post.UserID))
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]*model.UserPost, error) {
	return s.postRepo.ListWithMappings(ctx)
}

func (s *postService) AddResponse(ctx context.Context, in AddResponseInput) (*model.UserPostMapping, error) {
	// 引用完整性在应用层保证：帖子必须存在
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	mapping := &model.UserPostMapping{
		PostID:   in.PostID,
		UserID:   in.UserID,
		Comments: in.Comments,
		Liked:    in.Liked,
		Disliked: in.Disliked,
	}
	if err := s.mappingRepo.Create(ctx, mapping); err != nil {
		return nil, err
	}
	logger.Info("post response added", zap.String("post_id", in.PostID), zap.Int64("mapping_id", mapping.ID))
	return mapping, nil
}

func (s *postService) DeletePost(ctx context.Context, id string) error {
	err := s.postRepo.DeleteCascade(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	if err == nil {
		logger.Info("post deleted", zap.String("post_id", id))
	}
	return err
}
