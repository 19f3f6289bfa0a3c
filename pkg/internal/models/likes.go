package models

type BlogLikeAttitude = int8

const (
	LikeAttitudeNeutral = BlogLikeAttitude(iota)
	LikeAttitudePositive
	LikeAttitudeNegative
)

// BlogLike holds at most one row per (account, blog) pair; the attitude
// expresses like xor dislike.
type BlogLike struct {
	BaseModel

	Attitude BlogLikeAttitude `json:"attitude"`

	BlogID    uint `json:"blog_id" gorm:"uniqueIndex:idx_blog_likes_blog_account"`
	AccountID uint `json:"account_id" gorm:"uniqueIndex:idx_blog_likes_blog_account"`
}
