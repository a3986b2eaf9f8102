package model

import "time"

// UserPost 帖子主体，ID 由调用方提供（非系统生成）
type UserPost struct {
	ID        string  `gorm:"primaryKey;type:varchar(36)"`
	UserID    string  `gorm:"type:varchar(36);not null;index:idx_userpost_user"`
	Content   string  `gorm:"type:varchar(256);not null"`
	MediaURL  *string `gorm:"type:varchar(256)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// 一对多：删除帖子时级联删除全部响应记录
	Mappings []UserPostMapping `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (UserPost) TableName() string { return "userposts" }
