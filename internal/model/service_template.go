package model

import "gorm.io/datatypes"

// ServiceTemplate is a read-mostly catalog entry. The ID is a short catalog
// slug ("social", "seo"), not a UUID.
type ServiceTemplate struct {
	ID        string         `json:"id" gorm:"column:id"`
	Title     string         `json:"title" gorm:"column:title"`
	Subtitle  *string        `json:"subtitle" gorm:"column:subtitle"`
	Icon      string         `json:"icon" gorm:"column:icon"`
	Color     string         `json:"color" gorm:"column:color"`
	Summary   string         `json:"summary" gorm:"column:summary"`
	Details   datatypes.JSON `json:"details" gorm:"column:details"`
	SortOrder int            `json:"sort_order" gorm:"column:sort_order"`
}

type ServiceDetail struct {
	Label string `json:"label"`
	Desc  string `json:"desc"`
}
