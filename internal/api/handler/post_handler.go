package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/userposts/internal/model"
	"github.com/d60-Lab/userposts/internal/service"
	"github.com/d60-Lab/userposts/pkg/response"
)

type createPostRequest struct {
	ID       string  `json:"id" binding:"required"`
	UserID   string  `json:"user_id" binding:"required"`
	Content  string  `json:"content" binding:"required,max=256"`
	MediaURL *string `json:"media_url" binding:"omitempty,max=256"`
}

type addResponseRequest struct {
	PostID   string  `json:"post_id" binding:"required"`
	UserID   string  `json:"user_id" binding:"required"`
	Comments *string `json:"comments" binding:"omitempty,max=256"`
	Liked    bool    `json:"liked"`
	Disliked bool    `json:"disliked"`
}

// postView 帖子出参，键名与序列化怪癖沿用既有契约
type postView struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	Content         string        `json:"content"`
	ImageURL        *string       `json:"imageUrl"`
	UserPostmapping []mappingView `json:"userPostmapping"`
	CreatedAt       string        `json:"createdAt"`
}

// mappingView like 序列化为小写字符串而 dislike 保持布尔，
// 既有契约如此，保真优先不做统一
type mappingView struct {
	ID       int64   `json:"id"`
	PostID   string  `json:"post_id"`
	Comments *string `json:"comments"`
	Like     string  `json:"like"`
	Dislike  bool    `json:"dislike"`
}

// formatCreatedAt ISO-8601 微秒精度，末尾追加字面量 "Z"
func formatCreatedAt(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}

func newMappingView(m *model.UserPostMapping) mappingView {
	return mappingView{
		ID:       m.ID,
		PostID:   m.PostID,
		Comments: m.Comments,
		Like:     strconv.FormatBool(m.Liked),
		Dislike:  m.Disliked,
	}
}

func newPostView(p *model.UserPost) postView {
	mappings := make([]mappingView, 0, len(p.Mappings))
	for i := range p.Mappings {
		mappings = append(mappings, newMappingView(&p.Mappings[i]))
	}
	return postView{
		ID:              p.ID,
		UserID:          p.UserID,
		Content:         p.Content,
		ImageURL:        p.MediaURL,
		UserPostmapping: mappings,
		CreatedAt:       formatCreatedAt(p.CreatedAt),
	}
}

// CreatePost 发布帖子
// @Summary 发布帖子（ID 由调用方提供）
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /posts/ [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.postService.CreatePost(c.Request.Context(), service.CreatePostInput{
		ID:       req.ID,
		UserID:   req.UserID,
		Content:  req.Content,
		MediaURL: req.MediaURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrPostExists) {
			response.BadRequest(c, "Post with this ID already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Published(c, "Post created successfully.", []postView{newPostView(post)})
}

// ListPosts 查询全部帖子及其响应记录
// @Summary 查询帖子列表（内嵌响应记录）
// @Tags 帖子
// @Produce json
// @Success 200 {object} response.Response
// @Router /posts/ [get]
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	data := make([]postView, 0, len(posts))
	for _, p := range posts {
		data = append(data, newPostView(p))
	}
	response.Published(c, "Posts fetched successfully.", data)
}

// AddResponse 对帖子追加响应（评论/点赞/点踩）
// @Summary 追加用户响应
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body addResponseRequest true "响应信息"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/response/ [post]
func (h *Handler) AddResponse(c *gin.Context) {
	var req addResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	mapping, err := h.postService.AddResponse(c.Request.Context(), service.AddResponseInput{
		PostID:   req.PostID,
		UserID:   req.UserID,
		Comments: req.Comments,
		Liked:    req.Liked,
		Disliked: req.Disliked,
	})
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Published(c, "User response added successfully.", []mappingView{newMappingView(mapping)})
}

// DeletePost 删除帖子并级联删除其全部响应记录
// @Summary 删除帖子（级联）
// @Tags 帖子
// @Produce json
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{post_id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	postID := c.Param("post_id")
	if err := h.postService.DeletePost(c.Request.Context(), postID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Deleted(c, "Post and its responses deleted successfully.")
}
