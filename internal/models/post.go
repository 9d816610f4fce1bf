package models

import (
	"time"
)

type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title    string `gorm:"uniqueIndex;size:250;not null" json:"title"`
	Subtitle string `gorm:"size:250;not null" json:"subtitle"`
	// Display date fixed at creation time, e.g. "August 31, 2026".
	// Not updated on edit.
	Date      string    `gorm:"size:250;not null" json:"date"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ImgURL    string    `gorm:"size:250;not null" json:"img_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，查询时填充
	CommentCount int `gorm:"-" json:"comment_count"`
}

// PostDateFormat is the layout for Post.Date.
const PostDateFormat = "January 2, 2006"
