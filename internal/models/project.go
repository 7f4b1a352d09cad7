package models

import (
	"gorm.io/gorm"
)

// Project groups the documents a user uploads and the podcasts generated
// from them. Deleting a project cascades to both.
type Project struct {
	gorm.Model
	UUID        string            `json:"uuid" gorm:"uniqueIndex;not null"`
	Name        string            `json:"name" gorm:"not null"`
	Description string            `json:"description" gorm:"type:text"`
	OwnerID     string            `json:"owner_id" gorm:"index"`
	Documents   []Document        `json:"documents,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Generations []AudioGeneration `json:"generations,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Project) TableName() string {
	return "projects"
}
