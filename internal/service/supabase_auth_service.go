package service

import (
	"fmt"

	"github.com/fadilmartias/jobmatch/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type AuthUser struct {
	ID    string
	Email string
	Role  string
}

type SupabaseAuthServiceInterface interface {
	GetUser(accessToken string) (*AuthUser, error)
}

// SupabaseAuthService talks to the GoTrue REST API. Dipakai sebagai fallback
// introspeksi token kalau JWT secret tidak di-set di env.
type SupabaseAuthService struct {
	URL     string
	AnonKey string
	client  *resty.Client
}

func NewSupabaseAuthService() *SupabaseAuthService {
	cfg := config.LoadSupabaseConfig()
	return &SupabaseAuthService{
		URL:     cfg.URL,
		AnonKey: cfg.AnonKey,
		client:  resty.New(),
	}
}

func (s *SupabaseAuthService) GetUser(accessToken string) (*AuthUser, error) {
	resp, err := s.client.R().
		SetHeader("apikey", s.AnonKey).
		SetHeader("Authorization", "Bearer "+accessToken).
		Get(s.URL + "/auth/v1/user")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("supabase auth returned %d: %s", resp.StatusCode(), resp.String())
	}

	body := resp.String()
	user := &AuthUser{
		ID:    gjson.Get(body, "id").String(),
		Email: gjson.Get(body, "email").String(),
		Role:  gjson.Get(body, "role").String(),
	}
	if user.ID == "" {
		return nil, fmt.Errorf("supabase auth response has no user id")
	}
	return user, nil
}
