// Package identity resolves who the current user is and how they are shown.
package identity

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/perihassanzadeh/improve365/internal/model"
)

// Profile is the optional per-user document kept next to the account.
type Profile struct {
	Name       string  `json:"name,omitempty"`
	JoinDate   string  `json:"joinDate,omitempty"`
	ProfilePic string  `json:"profilePic,omitempty"`
	Weight     float64 `json:"weight,omitempty"`
	Height     float64 `json:"height,omitempty"`
}

// Identity is what the account system knows about the signed-in user.
// Profile is nil when no profile document exists.
type Identity struct {
	UserID      string   `json:"userId"`
	DisplayName string   `json:"displayName,omitempty"`
	Email       string   `json:"email,omitempty"`
	PhotoURL    string   `json:"photoURL,omitempty"`
	Profile     *Profile `json:"profile,omitempty"`
}

type Provider interface {
	Current(ctx context.Context) (*Identity, error)
}

// Display is the resolved presentation of the user.
type Display struct {
	UserID   string  `json:"userId,omitempty"`
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar"`
	Email    string  `json:"email,omitempty"`
	JoinDate string  `json:"joinDate,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Height   float64 `json:"height,omitempty"`
}

const fallbackName = "User"

// Resolve picks the name and avatar to show. It never fails: a nil identity
// resolves to "User" with the default avatar.
func Resolve(id *Identity) Display {
	d := Display{Name: fallbackName, Avatar: model.DefaultAvatarURL}
	if id == nil {
		return d
	}
	d.UserID = id.UserID
	d.Email = id.Email

	var p Profile
	if id.Profile != nil {
		p = *id.Profile
	}
	d.JoinDate = p.JoinDate
	d.Weight = p.Weight
	d.Height = p.Height

	switch {
	case strings.TrimSpace(p.Name) != "":
		d.Name = p.Name
	case strings.TrimSpace(id.DisplayName) != "":
		d.Name = id.DisplayName
	case emailLocalPart(id.Email) != "":
		d.Name = emailLocalPart(id.Email)
	}

	switch {
	case p.ProfilePic != "":
		d.Avatar = p.ProfilePic
	case id.PhotoURL != "":
		d.Avatar = id.PhotoURL
	}
	return d
}

// ResolveCurrent asks p for the current identity and resolves it. Provider
// failures are logged and resolve to the fallback display.
func ResolveCurrent(ctx context.Context, p Provider, logger *zap.Logger) Display {
	if logger == nil {
		logger = zap.NewNop()
	}
	if p == nil {
		return Resolve(nil)
	}
	id, err := p.Current(ctx)
	if err != nil {
		logger.Warn("profile resolution failed", zap.Error(err))
		return Resolve(nil)
	}
	return Resolve(id)
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}
