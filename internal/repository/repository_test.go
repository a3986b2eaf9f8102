package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/userposts/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.UserPost{}, &model.UserPostMapping{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPostCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	media := "https://example.com/a.png"
	p := &model.UserPost{ID: "p1", UserID: "u1", Content: "hello", MediaURL: &media}
	require.NoError(t, repo.Create(ctx, p))
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "hello", got.Content)
	require.NotNil(t, got.MediaURL)
	assert.Equal(t, media, *got.MediaURL)
}

func TestPostCreateDuplicateKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.UserPost{ID: "p1", UserID: "u1", Content: "a"}))
	err := repo.Create(ctx, &model.UserPost{ID: "p1", UserID: "u2", Content: "b"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// 原记录不受影响
	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "a", got.Content)
}

func TestGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListWithMappings(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	mappingRepo := NewMappingRepository(db)
	ctx := context.Background()

	require.NoError(t, postRepo.Create(ctx, &model.UserPost{ID: "p1", UserID: "u1", Content: "first"}))
	require.NoError(t, postRepo.Create(ctx, &model.UserPost{ID: "p2", UserID: "u1", Content: "second"}))

	comment := "nice"
	require.NoError(t, mappingRepo.Create(ctx, &model.UserPostMapping{PostID: "p1", UserID: "u2", Comments: &comment, Liked: true}))

	posts, err := postRepo.ListWithMappings(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	// 自然存储顺序即插入顺序
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "p2", posts[1].ID)

	require.Len(t, posts[0].Mappings, 1)
	m := posts[0].Mappings[0]
	assert.Equal(t, "p1", m.PostID)
	assert.Equal(t, "u2", m.UserID)
	assert.True(t, m.Liked)
	assert.False(t, m.Disliked)
	assert.NotZero(t, m.ID)

	assert.Empty(t, posts[1].Mappings)
}

func TestDeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	mappingRepo := NewMappingRepository(db)
	ctx := context.Background()

	require.NoError(t, postRepo.Create(ctx, &model.UserPost{ID: "p1", UserID: "u1", Content: "a"}))
	require.NoError(t, postRepo.Create(ctx, &model.UserPost{ID: "p2", UserID: "u1", Content: "b"}))
	for i := 0; i < 3; i++ {
		require.NoError(t, mappingRepo.Create(ctx, &model.UserPostMapping{PostID: "p1", UserID: fmt.Sprintf("u%d", i)}))
	}
	require.NoError(t, mappingRepo.Create(ctx, &model.UserPostMapping{PostID: "p2", UserID: "u9"}))

	require.NoError(t, postRepo.DeleteCascade(ctx, "p1"))

	_, err := postRepo.GetByID(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)

	orphans, err := mappingRepo.ListByPostID(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// 其它帖子及其响应保持不变
	kept, err := mappingRepo.ListByPostID(ctx, "p2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestDeleteCascadeNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	err := repo.DeleteCascade(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMappingAutoIncrementID(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	mappingRepo := NewMappingRepository(db)
	ctx := context.Background()

	require.NoError(t, postRepo.Create(ctx, &model.UserPost{ID: "p1", UserID: "u1", Content: "a"}))

	m1 := &model.UserPostMapping{PostID: "p1", UserID: "u2"}
	m2 := &model.UserPostMapping{PostID: "p1", UserID: "u3"}
	require.NoError(t, mappingRepo.Create(ctx, m1))
	require.NoError(t, mappingRepo.Create(ctx, m2))
	assert.Greater(t, m2.ID, m1.ID)
}
