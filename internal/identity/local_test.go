package identity_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/perihassanzadeh/improve365/internal/db"
	"github.com/perihassanzadeh/improve365/internal/identity"
	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
)

func TestLocalProviderCombinesConfigAndUser(t *testing.T) {
	t.Parallel()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "improve365.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	for k, v := range map[string]string{
		service.ConfigUserID:   "local-1",
		service.ConfigEmail:    "sam@example.com",
		service.ConfigPhotoURL: "https://photo",
	} {
		if err := service.SetConfig(sqldb, k, v); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	if _, err := service.SetConfigOnce(sqldb, service.ConfigJoinDate, "2026-01-02"); err != nil {
		t.Fatalf("set join date: %v", err)
	}

	p := identity.NewLocalProvider(sqldb, func() model.User {
		return model.User{ProfilePic: model.DefaultAvatarURL, JoinDate: "2025-12-31", Weight: 70}
	})
	id, err := p.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	d := identity.Resolve(id)
	if d.UserID != "local-1" || d.Name != "sam" || d.Avatar != "https://photo" {
		t.Fatalf("unexpected display: %+v", d)
	}
	if d.JoinDate != "2026-01-02" || d.Weight != 70 {
		t.Fatalf("unexpected profile fields: %+v", d)
	}
}
