// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("SECRET_KEY", "test-secret")
	os.Setenv("CONTENT_SECURITY_POLICY", "script-src 'self'")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.ContentSecurityPolicy != "script-src 'self'" {
		t.Errorf("unexpected CSP %q", cfg.ContentSecurityPolicy)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-secret", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite default, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_MissingRequired(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-secret", "s1"}); err == nil {
		t.Error("expected error without database URL")
	}
	if _, err := ParseFlags([]string{"-d", "file:test.db"}); err == nil {
		t.Error("expected error without secret key")
	}
	if _, err := ParseFlags([]string{"-d", "file:test.db", "-secret", "s1", "-t", "mysql"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
