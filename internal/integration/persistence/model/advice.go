// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fincast/backend/internal/domain/entity"
)

// AdviceModel represents the advice table in the database.
type AdviceModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Question          string         `gorm:"type:text;not null"`
	Answer            string         `gorm:"type:text;not null"`
	CoveredEntityIDs  pq.StringArray `gorm:"type:text[]"`
	IncludedSimulated bool           `gorm:"default:false"`
	CreatedAt         time.Time      `gorm:"not null;index"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the AdviceModel.
func (AdviceModel) TableName() string {
	return "advice"
}

// ToEntity converts an AdviceModel to a domain Advice entity.
func (m *AdviceModel) ToEntity() *entity.Advice {
	return &entity.Advice{
		ID:                m.ID,
		UserID:            m.UserID,
		Question:          m.Question,
		Answer:            m.Answer,
		CoveredEntityIDs:  []string(m.CoveredEntityIDs),
		IncludedSimulated: m.IncludedSimulated,
		CreatedAt:         m.CreatedAt,
	}
}

// AdviceFromEntity creates an AdviceModel from a domain Advice entity.
func AdviceFromEntity(advice *entity.Advice) *AdviceModel {
	return &AdviceModel{
		ID:                advice.ID,
		UserID:            advice.UserID,
		Question:          advice.Question,
		Answer:            advice.Answer,
		CoveredEntityIDs:  pq.StringArray(advice.CoveredEntityIDs),
		IncludedSimulated: advice.IncludedSimulated,
		CreatedAt:         advice.CreatedAt,
	}
}
