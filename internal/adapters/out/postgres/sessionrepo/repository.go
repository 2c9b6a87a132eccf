package sessionrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/session"
	"partnerconsole/internal/core/ports"
	"partnerconsole/internal/pkg/errs"
)

// GormSessionRepository implements ports.SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

var _ ports.SessionRepository = (*GormSessionRepository)(nil)

// Get retrieves a session by its console identifier.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts a session row.
func (r *GormSessionRepository) Save(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Delete removes a session row. Missing rows are not an error.
func (r *GormSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&SessionDTO{}, "id = ?", id.Bytes()).Error
}

// AllAuthenticated returns every session currently in the authenticated state.
func (r *GormSessionRepository) AllAuthenticated(ctx context.Context) ([]*session.Session, error) {
	var dtos []SessionDTO
	if err := r.db.WithContext(ctx).
		Where("state = ?", int(session.StateAuthenticated)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	sessions := make([]*session.Session, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

// expiredSessionGrace keeps freshly created anonymous sessions, whose
// credential timestamps are zero, out of the sweep for a day.
const expiredSessionGrace = 24 * time.Hour

// DeleteExpired removes sessions whose credentials all lapsed before now and
// that saw no activity within the grace window.
func (r *GormSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where(
			"access_expires_at < ? AND refresh_expires_at < ? AND updated_at < ?",
			now, now, now.Add(-expiredSessionGrace),
		).
		Delete(&SessionDTO{})
	return result.RowsAffected, result.Error
}
