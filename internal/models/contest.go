package models

import (
	"time"

	"github.com/google/uuid"
)

type ContestStatus string

const (
	ContestPending  ContestStatus = "pending"
	ContestApproved ContestStatus = "approved"
	ContestRejected ContestStatus = "rejected"
)

// Contest is a moderated record describing a task with a deadline, entry
// price and prize. The name carries a unique index: name uniqueness is a
// storage constraint, and the create path treats a duplicate-key error as
// "taken, try the next suffix".
type Contest struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string        `gorm:"type:varchar(150);uniqueIndex;not null" json:"contestName"`
	Image            string        `gorm:"type:varchar(255)" json:"image"`
	Description      string        `gorm:"type:text" json:"description"`
	Price            float64       `json:"contestPrice"`
	PrizeMoney       float64       `json:"prizeMoney"`
	TaskInstructions string        `gorm:"type:text" json:"taskInstructions"`
	Tags             []string      `gorm:"serializer:json" json:"tags"`
	Deadline         time.Time     `json:"deadline"`
	CreatorEmail     string        `gorm:"type:varchar(100);index;not null" json:"creatorEmail"`
	Status           ContestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ParticipantCount int           `gorm:"not null;default:0" json:"participantCount"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
