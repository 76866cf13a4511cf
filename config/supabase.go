package config

import (
	"errors"
	"os"

	supa "github.com/supabase-community/supabase-go"
)

// ErrSupabaseNotConfigured is returned when the environment carries no
// Supabase credentials. Chat-history persistence is optional; callers decide
// whether that is fatal.
var ErrSupabaseNotConfigured = errors.New("SUPABASE_URL or SUPABASE_SERVICE_KEY not set")

// InitSupabase initializes the Supabase client using environment variables.
func InitSupabase() (*supa.Client, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_SERVICE_KEY")
	if supabaseKey == "" {
		supabaseKey = os.Getenv("SUPABASE_ANON_KEY")
	}
	if supabaseURL == "" || supabaseKey == "" {
		return nil, ErrSupabaseNotConfigured
	}

	client, err := supa.NewClient(supabaseURL, supabaseKey, nil)
	if err != nil {
		return nil, err
	}
	return client, nil
}
