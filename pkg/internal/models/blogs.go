package models

import "time"

type Blog struct {
	BaseModel

	Title       string    `json:"title"`
	ShortTitle  string    `json:"short_title"`
	Body        string    `json:"body"`
	Language    string    `json:"language" gorm:"index"`
	Publish     bool      `json:"publish"`
	Commentable bool      `json:"commentable"`
	AtTop       bool      `json:"at_top"`
	ReleaseDate time.Time `json:"release_date" gorm:"index"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`

	Metric BlogMetric `json:"metric" gorm:"-"`
}

// BlogMetric carries the per-blog counters and resolved media that are
// recomputed on every read instead of being stored.
type BlogMetric struct {
	LikeCount    int64   `json:"like_count"`
	DislikeCount int64   `json:"dislike_count"`
	CommentCount int64   `json:"comment_count"`
	DefaultImage *string `json:"default_image"`

	Categories []BlogCategory `json:"categories,omitempty"`
	Comments   []BlogComment  `json:"comments,omitempty"`
	Images     []BlogImage    `json:"images,omitempty"`
}
