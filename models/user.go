package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SavedComparisons []SavedComparison `json:"-" gorm:"foreignKey:UserID"`
}
