package models

type Upload struct {
	BaseModel

	Name string `json:"name"`
	Path string `json:"path"`

	AccountID uint `json:"account_id"`
}

// BlogImage links an upload to a blog. At most one row per blog carries
// IsDefault = true; the first image stored for a blog becomes its default.
type BlogImage struct {
	BaseModel

	IsDefault bool `json:"is_default"`

	BlogID   uint   `json:"blog_id" gorm:"index"`
	UploadID uint   `json:"upload_id"`
	Upload   Upload `json:"upload"`

	// Absolute URL resolved against the requesting host, not stored
	URL string `json:"url" gorm:"-"`
}
