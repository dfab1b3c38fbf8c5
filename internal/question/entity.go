package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizQuestion belongs to the question bank. Once a daily session references
// a question it must never be renumbered; deactivation is the only allowed
// retirement path.
type QuizQuestion struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	Options       datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer int            `gorm:"not null" json:"correct_answer"`
	Explanation   string         `gorm:"type:text" json:"explanation,omitempty"`
	Subject       string         `gorm:"type:text;not null;index" json:"subject"`
	Difficulty    Difficulty     `gorm:"type:text;not null;index" json:"difficulty"`
	Points        int            `gorm:"not null;default:10" json:"points"`
	Active        bool           `gorm:"not null;default:true;index" json:"active"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
