package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("HOLIDAY_SOURCE", "static")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults to load, got %v", err)
	}
	if cfg.GetHTTPAddr() != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.GetHTTPAddr())
	}
	if cfg.GetBusinessTimezone() != "America/New_York" {
		t.Fatalf("expected America/New_York, got %q", cfg.GetBusinessTimezone())
	}
	if cfg.GetShutdownTimeout() != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %s", cfg.GetShutdownTimeout())
	}
	first, last := cfg.GetHolidayRulesYears()
	if last-first != 6 {
		t.Fatalf("expected a 7 year rule window, got %d-%d", first, last)
	}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development mode")
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown holiday source",
			env:     map[string]string{"HOLIDAY_SOURCE": "lunar"},
			wantErr: "HOLIDAY_SOURCE",
		},
		{
			name:    "file source without path",
			env:     map[string]string{"HOLIDAY_SOURCE": "file", "HOLIDAY_FILE": ""},
			wantErr: "HOLIDAY_FILE",
		},
		{
			name:    "bad timezone",
			env:     map[string]string{"BUSINESS_TIMEZONE": "Mars/Olympus_Mons"},
			wantErr: "BUSINESS_TIMEZONE",
		},
		{
			name:    "cors wildcard with credentials",
			env:     map[string]string{"CORS_ORIGINS": "*", "CORS_ALLOW_CREDENTIALS": "true"},
			wantErr: "CORS_ALLOW_CREDENTIALS",
		},
		{
			name:    "no cors origins",
			env:     map[string]string{"CORS_ORIGINS": " , "},
			wantErr: "CORS_ORIGINS",
		},
		{
			name:    "inverted rule years",
			env:     map[string]string{"HOLIDAY_RULES_FIRST_YEAR": "2030", "HOLIDAY_RULES_LAST_YEAR": "2026"},
			wantErr: "HOLIDAY_RULES",
		},
		{
			name:    "zero rate limit",
			env:     map[string]string{"PUBLIC_RATE_LIMIT_PER_MINUTE": "0"},
			wantErr: "PUBLIC_RATE_LIMIT",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			_, err := Load()
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://a.example , ,https://b.example")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected split result %v", got)
	}
}
