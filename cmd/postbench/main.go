package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/userposts/config"
	"github.com/d60-Lab/userposts/internal/model"
	"github.com/d60-Lab/userposts/internal/repository"
	"github.com/d60-Lab/userposts/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))

	postRepo := repository.NewPostRepository(db)
	mappingRepo := repository.NewMappingRepository(db)

	ctx := context.Background()

	N := 1000
	if s := os.Getenv("N"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 { N = n }
	}
	M := 5
	if s := os.Getenv("M"); s != "" {
		if m, err := strconv.Atoi(s); err == nil && m > 0 { M = m }
	}

	// seed: N 个帖子，每帖 M 条响应
	ids := make([]string, N)
	t0 := time.Now()
	for i := 0; i < N; i++ {
		id := uuid.New().String()
		ids[i] = id
		comment := fmt.Sprintf("comment %d", i)
		_ = postRepo.Create(ctx, &model.UserPost{ID: id, UserID: "bench", Content: fmt.Sprintf("post %d", i)})
		for j := 0; j < M; j++ {
			_ = mappingRepo.Create(ctx, &model.UserPostMapping{
				PostID:   id,
				UserID:   fmt.Sprintf("u%04d", j),
				Comments: &comment,
				Liked:    j%2 == 0,
				Disliked: j%3 == 0,
			})
		}
	}
	seedDur := time.Since(t0)

	// 全量列表（预加载响应）
	t1 := time.Now()
	posts := must(postRepo.ListWithMappings(ctx))
	listDur := time.Since(t1)

	// 级联删除
	t2 := time.Now()
	for _, id := range ids {
		_ = postRepo.DeleteCascade(ctx, id)
	}
	deleteDur := time.Since(t2)

	fmt.Printf("N=%d, M=%d\n", N, M)
	fmt.Printf("Seed (%d posts, %d mappings) total: %v, per post: %v\n", N, N*M, seedDur, seedDur/time.Duration(N))
	fmt.Printf("ListWithMappings: %d posts in %v\n", len(posts), listDur)
	fmt.Printf("DeleteCascade total: %v, per post: %v\n", deleteDur, deleteDur/time.Duration(N))
}
