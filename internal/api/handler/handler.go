package handler

import "github.com/d60-Lab/userposts/internal/service"

type Handler struct {
	postService service.PostService
}

func New(postService service.PostService) *Handler {
	return &Handler{postService: postService}
}
