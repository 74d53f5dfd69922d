package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "BREEDS_FILE", "OUTPUT_ROOT", "LOG_BACKEND", "LOG_FILE",
		"SQLITE_PATH", "DB_DSN", "MAX_UPLOAD_MB", "APP_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Port != "8080" || cfg.BreedsFile != "breeds.txt" || cfg.OutputRoot != "고객사진" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Backend != BackendXLSX || cfg.LogFile != "customer_data.xlsx" {
		t.Fatalf("expected xlsx backend, got %+v", cfg)
	}
	if cfg.MaxUploadBytes != 25<<20 {
		t.Fatalf("unexpected upload limit %d", cfg.MaxUploadBytes)
	}
}

func TestFromEnv_DSNImpliesPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/grooming")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Backend != BackendPostgres {
		t.Fatalf("expected postgres, got %s", cfg.Backend)
	}
}

func TestFromEnv_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"bad port":         {"PORT": "http"},
		"bad upload":       {"MAX_UPLOAD_MB": "-1"},
		"unknown backend":  {"LOG_BACKEND": "mongo"},
		"postgres sin dsn": {"LOG_BACKEND": "postgres"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
