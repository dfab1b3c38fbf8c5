package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email                       string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Name                        string    `gorm:"type:text;not null" json:"name"`
	AvatarURL                   string    `gorm:"type:text" json:"avatar_url,omitempty"`
	Role                        string    `gorm:"type:text;not null;default:'student'" json:"role"`
	EncryptedGoogleAccessToken  string    `gorm:"type:text" json:"-"`
	EncryptedGoogleRefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt                   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
