package models

type Topic struct {
	Slug        string `gorm:"primaryKey" json:"slug"`
	Description string `json:"description"`
	ImgURL      string `gorm:"column:img_url" json:"img_url,omitempty"`
}

type CreateTopicRequest struct {
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ImgURL      *string `json:"img_url"`
}
