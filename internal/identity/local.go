package identity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
)

// LocalProvider reads the account from the app_config table and the profile
// from the stored user record.
type LocalProvider struct {
	db   *sql.DB
	user func() model.User
}

// NewLocalProvider builds a provider over db. user may be nil when no state
// is loaded.
func NewLocalProvider(db *sql.DB, user func() model.User) *LocalProvider {
	return &LocalProvider{db: db, user: user}
}

func (p *LocalProvider) Current(ctx context.Context) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	values, err := service.ListConfig(p.db)
	if err != nil {
		return nil, fmt.Errorf("local identity: %w", err)
	}
	id := &Identity{
		UserID:      values[service.ConfigUserID],
		DisplayName: values[service.ConfigDisplayName],
		Email:       values[service.ConfigEmail],
		PhotoURL:    values[service.ConfigPhotoURL],
	}

	profile := Profile{JoinDate: values[service.ConfigJoinDate]}
	if p.user != nil {
		u := p.user()
		profile.Name = u.Name
		if u.ProfilePic != model.DefaultAvatarURL {
			profile.ProfilePic = u.ProfilePic
		}
		if profile.JoinDate == "" {
			profile.JoinDate = u.JoinDate
		}
		profile.Weight = u.Weight
		profile.Height = u.Height
	}
	if profile != (Profile{}) {
		id.Profile = &profile
	}
	return id, nil
}
