package model

// SearchDTO carries the free-text place name typed by the visitor.
type SearchDTO struct {
	Search string `json:"search" form:"search" query:"search"`
}
