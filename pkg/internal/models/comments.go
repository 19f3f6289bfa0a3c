package models

type BlogComment struct {
	BaseModel

	Comment string `json:"comment"`

	BlogID    uint `json:"blog_id" gorm:"index"`
	AccountID uint `json:"account_id"`

	// Resolved for the detail view, not stored
	AccountName string `json:"account_name" gorm:"-"`
}
