package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid csv backend config",
			config: Config{
				Port:         "8081",
				DataBackend:  "csv",
				DataDir:      t.TempDir(),
				ReceiptQRURL: "https://www.surokkhavetclinics.com",
			},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			config: Config{
				Port:         "8081",
				DataBackend:  "sqlite",
				SQLiteDBPath: filepath.Join(t.TempDir(), "surokkha.db"),
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:        "abc",
				DataBackend: "csv",
				DataDir:     t.TempDir(),
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:        "70000",
				DataBackend: "csv",
				DataDir:     t.TempDir(),
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid backend",
			config: Config{
				Port:        "8081",
				DataBackend: "postgres",
			},
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
		{
			name: "sqlite backend without path",
			config: Config{
				Port:        "8081",
				DataBackend: "sqlite",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "bad QR URL scheme",
			config: Config{
				Port:         "8081",
				DataBackend:  "csv",
				DataDir:      t.TempDir(),
				ReceiptQRURL: "ftp://example.com",
			},
			wantErr:     true,
			errorString: "invalid receipt QR URL scheme",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("Validate() = %q, want it to contain %q", err, tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
		})
	}
}

func TestConfig_ValidateCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := Config{Port: "8081", DataBackend: "csv", DataDir: dir}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("data directory was not created: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_DIR", "SQLITE_DB_PATH", "DATA_BACKEND", "LETTERHEAD_PATH", "RECEIPT_QR_URL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg := Load()
	if cfg.Port != "8081" {
		t.Errorf("Port = %s, want 8081", cfg.Port)
	}
	if cfg.DataBackend != "csv" {
		t.Errorf("DataBackend = %s, want csv", cfg.DataBackend)
	}
	if cfg.ReceiptQRURL != "https://www.surokkhavetclinics.com" {
		t.Errorf("ReceiptQRURL = %s", cfg.ReceiptQRURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", "/tmp/x.db")
	cfg := Load()
	if cfg.Port != "9090" || cfg.DataBackend != "sqlite" || cfg.SQLiteDBPath != "/tmp/x.db" {
		t.Fatalf("Load() = %+v", cfg)
	}
}
