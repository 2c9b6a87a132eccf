// Package sessionrepo persists console sessions with GORM. Sessions are flat
// rows: the partner snapshot is denormalized into nullable columns because it
// only exists while the session is authenticated.
package sessionrepo

import (
	"time"

	"github.com/google/uuid"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/partner"
	"partnerconsole/internal/core/domain/model/session"
)

// SessionDTO represents the database structure for persisting sessions.
type SessionDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	State int       `gorm:"type:int;not null"`

	PartnerID          *string    `gorm:"type:varchar(64)"`
	PartnerFullName    *string    `gorm:"type:varchar(255)"`
	PartnerEmail       *string    `gorm:"type:varchar(255)"`
	PartnerRole        *string    `gorm:"type:varchar(64)"`
	PartnerIsVerified  *bool      `gorm:"type:boolean"`
	PartnerPhoneNumber *string    `gorm:"type:varchar(32)"`
	PartnerLastLogin   *time.Time `gorm:"type:timestamptz"`

	AccessToken      string    `gorm:"type:text;not null;default:''"`
	AccessExpiresAt  time.Time `gorm:"type:timestamptz"`
	RefreshToken     string    `gorm:"type:text;not null;default:''"`
	RefreshExpiresAt time.Time `gorm:"type:timestamptz;index"`

	ProfileRefreshedAt time.Time `gorm:"type:timestamptz"`
	UpdatedAt          time.Time `gorm:"type:timestamptz"`
}

// TableName overrides GORM's default naming to use "sessions".
func (SessionDTO) TableName() string {
	return "sessions"
}

func fromDomain(s *session.Session) SessionDTO {
	dto := SessionDTO{
		ID:                 s.ID().Bytes(),
		State:              int(s.State()),
		AccessToken:        s.AccessCredential().Token(),
		AccessExpiresAt:    s.AccessCredential().ExpiresAt(),
		RefreshToken:       s.RefreshCredential().Token(),
		RefreshExpiresAt:   s.RefreshCredential().ExpiresAt(),
		ProfileRefreshedAt: s.ProfileRefreshedAt(),
	}

	if p := s.Partner(); p != nil {
		id := p.ID().String()
		fullName := p.FullName()
		email := p.Email()
		role := p.Role()
		isVerified := p.IsVerified()
		phone := p.PhoneNumber()

		dto.PartnerID = &id
		dto.PartnerFullName = &fullName
		dto.PartnerEmail = &email
		dto.PartnerRole = &role
		dto.PartnerIsVerified = &isVerified
		dto.PartnerPhoneNumber = &phone
		dto.PartnerLastLogin = p.LastLogin()
	}

	return dto
}

func toDomain(dto SessionDTO) (*session.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var p *partner.Partner
	if dto.PartnerID != nil {
		partnerID, idErr := kernel.NewRemoteID(*dto.PartnerID)
		if idErr != nil {
			return nil, idErr
		}

		p, err = partner.RestorePartner(
			partnerID,
			deref(dto.PartnerFullName),
			deref(dto.PartnerEmail),
			deref(dto.PartnerRole),
			dto.PartnerIsVerified != nil && *dto.PartnerIsVerified,
			deref(dto.PartnerPhoneNumber),
			dto.PartnerLastLogin,
		)
		if err != nil {
			return nil, err
		}
	}

	return session.RestoreSession(
		id,
		session.State(dto.State),
		p,
		session.RestoreCredential(dto.AccessToken, dto.AccessExpiresAt),
		session.RestoreCredential(dto.RefreshToken, dto.RefreshExpiresAt),
		dto.ProfileRefreshedAt,
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
