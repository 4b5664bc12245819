package domain

import "time"

type User struct {
	ID           uint      `json:"userId" gorm:"primaryKey;autoIncrement"`
	FirstName    string    `json:"firstName" gorm:"not null"`
	LastName     string    `json:"lastName" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Gender       string    `json:"gender"`
	JobRole      string    `json:"jobRole"`
	Department   string    `json:"department"`
	Address      string    `json:"address"`
	Admin        bool      `json:"admin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
}
