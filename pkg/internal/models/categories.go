package models

// BlogSourceCategory is the language neutral identity every localized
// category name hangs off.
type BlogSourceCategory struct {
	BaseModel

	Name string `json:"name" gorm:"uniqueIndex"`
}

type BlogCategory struct {
	BaseModel

	SourceID uint   `json:"source_id" gorm:"uniqueIndex:idx_blog_categories_source_lang"`
	Language string `json:"language" gorm:"uniqueIndex:idx_blog_categories_source_lang"`
	Name     string `json:"name"`

	Source BlogSourceCategory `json:"source" gorm:"foreignKey:SourceID"`
}

// BlogCategoryLink rows are recreated wholesale whenever a blog's category
// list changes, so they carry no lifecycle columns of their own.
type BlogCategoryLink struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	BlogID     uint `json:"blog_id" gorm:"index"`
	CategoryID uint `json:"category_id" gorm:"index"`
}
