package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// FirestoreConfig locates the profile document users/{UserID}.
type FirestoreConfig struct {
	BaseURL   string
	ProjectID string
	Token     string
	UserID    string
	Email     string
	Timeout   time.Duration
}

// FirestoreProvider fetches the profile document over the Firestore REST API.
type FirestoreProvider struct {
	httpClient *resty.Client
	cfg        FirestoreConfig
}

func NewFirestoreProvider(cfg FirestoreConfig) *FirestoreProvider {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = "https://firestore.googleapis.com/v1"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New()
	client.
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}
	return &FirestoreProvider{httpClient: client, cfg: cfg}
}

// firestoreValue is one typed field of a Firestore document.
type firestoreValue struct {
	StringValue  *string  `json:"stringValue,omitempty"`
	IntegerValue *string  `json:"integerValue,omitempty"`
	DoubleValue  *float64 `json:"doubleValue,omitempty"`
}

type firestoreDocument struct {
	Name   string                    `json:"name"`
	Fields map[string]firestoreValue `json:"fields"`
}

type firestoreError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (p *FirestoreProvider) Current(ctx context.Context) (*Identity, error) {
	if p.cfg.UserID == "" {
		return nil, fmt.Errorf("firestore identity: no signed-in user")
	}
	id := &Identity{UserID: p.cfg.UserID, Email: p.cfg.Email}

	doc := new(firestoreDocument)
	apiErr := new(firestoreError)
	resp, err := p.httpClient.R().
		SetContext(ctx).
		SetResult(doc).
		SetError(apiErr).
		Get(fmt.Sprintf("projects/%s/databases/(default)/documents/users/%s",
			url.PathEscape(p.cfg.ProjectID), url.PathEscape(p.cfg.UserID)))
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return id, nil
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("firestore api error: code=%d, message=%s", resp.StatusCode(), apiErr.Error.Message)
	}

	profile := doc.profile()
	id.Profile = &profile
	if v := doc.Fields["displayName"].str(); v != "" {
		id.DisplayName = v
	}
	if v := doc.Fields["photoURL"].str(); v != "" {
		id.PhotoURL = v
	}
	return id, nil
}

func (d *firestoreDocument) profile() Profile {
	return Profile{
		Name:       d.Fields["name"].str(),
		JoinDate:   d.Fields["joinDate"].str(),
		ProfilePic: d.Fields["profilePic"].str(),
		Weight:     d.Fields["weight"].num(),
		Height:     d.Fields["height"].num(),
	}
}

func (v firestoreValue) str() string {
	if v.StringValue != nil {
		return *v.StringValue
	}
	return ""
}

// num reads integer, double or numeric string values; anything else is 0.
func (v firestoreValue) num() float64 {
	switch {
	case v.DoubleValue != nil:
		return *v.DoubleValue
	case v.IntegerValue != nil:
		n, _ := strconv.ParseFloat(*v.IntegerValue, 64)
		return n
	case v.StringValue != nil:
		n, _ := strconv.ParseFloat(strings.TrimSpace(*v.StringValue), 64)
		return n
	}
	return 0
}
