package model

import "time"

// UserPostMapping 用户对帖子的响应（评论 / 点赞 / 点踩），自增主键
// liked 与 disliked 相互独立，允许同时为 true
type UserPostMapping struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	UserID    string  `gorm:"type:varchar(36);not null"`
	PostID    string  `gorm:"type:varchar(36);not null;index:idx_mapping_post"`
	Comments  *string `gorm:"type:varchar(256)"`
	Liked     bool    `gorm:"not null;default:false"`
	Disliked  bool    `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserPostMapping) TableName() string { return "userpostsmapping" }
