package config

import (
	"os"
	"sync"
)

type SupabaseConfig struct {
	URL       string
	AnonKey   string
	JWTSecret string
}

var (
	supabaseConfig *SupabaseConfig
	supabaseOnce   sync.Once
)

func LoadSupabaseConfig() *SupabaseConfig {
	supabaseOnce.Do(func() {
		supabaseConfig = &SupabaseConfig{
			URL:       os.Getenv("SUPABASE_URL"),
			AnonKey:   os.Getenv("SUPABASE_ANON_KEY"),
			JWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		}
	})
	return supabaseConfig
}
