package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg), WithHomeDir(tmp)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyDatabaseDriver); got != "sqlite" {
		t.Fatalf("expected default %s to be sqlite, got %q", KeyDatabaseDriver, got)
	}
	wantPath := filepath.Join(tmp, DirName, DefaultDatabaseFile)
	if got := GetString(KeyDatabasePath); got != wantPath {
		t.Fatalf("expected default %s to be %q, got %q", KeyDatabasePath, wantPath, got)
	}
	if got := GetString(KeyOutputFormat); got != "rich" {
		t.Fatalf("expected default %s to be rich, got %q", KeyOutputFormat, got)
	}
	if got := GetString(KeyTheme); got != "tokyonight" {
		t.Fatalf("expected default %s to be tokyonight, got %q", KeyTheme, got)
	}
	if GetBool(KeyDebug) {
		t.Fatalf("expected default %s to be false", KeyDebug)
	}
	if err := Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "notes", "2026")
	mustMkdir(t, nested)
	projectCfg := filepath.Join(projectDir, DirName, "config.yaml")
	writeFile(t, projectCfg, `
output:
  format: plain
database:
  driver: postgres
  dsn: postgres://project/biodex
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
output:
  format: light
author:
  id: 5f1c4a52-5b3e-4d2a-9c4e-0d7f1b2a3c4d
database:
  driver: rest
`)

	if err := Initialize(
		WithWorkingDir(nested),
		WithUserConfig(userCfg),
		WithHomeDir(tmp),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyOutputFormat); got != "plain" {
		t.Fatalf("expected project config to win for %s, got %q", KeyOutputFormat, got)
	}
	if got := GetString(KeyDatabaseDriver); got != "postgres" {
		t.Fatalf("expected project driver, got %q", got)
	}
	if got := GetString(KeyDatabaseDSN); got != "postgres://project/biodex" {
		t.Fatalf("expected project dsn, got %q", got)
	}
	if got := GetString(KeyAuthorID); got != "5f1c4a52-5b3e-4d2a-9c4e-0d7f1b2a3c4d" {
		t.Fatalf("expected user author id to survive merge, got %q", got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, DirName, "config.yaml")
	writeFile(t, projectCfg, `
rest:
  url: https://project.example.com
  api-key: project-key
`)

	t.Setenv("BX_REST_URL", "https://env.example.com")
	t.Setenv("BX_REST_API_KEY", "env-key")

	if err := Initialize(
		WithWorkingDir(tmp),
		WithProjectConfig(projectCfg),
		WithHomeDir(tmp),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyRestURL); got != "https://env.example.com" {
		t.Fatalf("expected env override for %s, got %q", KeyRestURL, got)
	}
	if got := GetString(KeyRestAPIKey); got != "env-key" {
		t.Fatalf("expected env override for %s, got %q", KeyRestAPIKey, got)
	}

	if err := ApplyOverrides(map[string]any{
		KeyRestURL:    "https://flag.example.com",
		KeyRestAPIKey: "",
		KeyDebug:      true,
	}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if got := GetString(KeyRestURL); got != "https://flag.example.com" {
		t.Fatalf("expected flag override for %s, got %q", KeyRestURL, got)
	}
	if got := GetString(KeyRestAPIKey); got != "env-key" {
		t.Fatalf("empty override should not mask env, got %q", got)
	}
	if !GetBool(KeyDebug) {
		t.Fatalf("expected %s override to be true", KeyDebug)
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithHomeDir(tmp)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if err := Set(KeyDatabaseDriver, "oracle"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	err := Validate()
	if err == nil || !strings.Contains(err.Error(), "database.driver") {
		t.Fatalf("expected driver validation error, got %v", err)
	}

	for _, driver := range Drivers {
		if err := Set(KeyDatabaseDriver, driver); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := Validate(); err != nil {
			t.Fatalf("driver %q rejected: %v", driver, err)
		}
	}

	if err := Set(KeyDatabaseDriver, "rest"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set(KeyOutputFormat, "fancy"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	err = Validate()
	if err == nil || !strings.Contains(err.Error(), "output.format") {
		t.Fatalf("expected output format validation error, got %v", err)
	}
}

func TestProjectConfigDirectoryIsError(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	mustMkdir(t, filepath.Join(tmp, DirName, "config.yaml"))

	if err := Initialize(WithWorkingDir(tmp), WithHomeDir(tmp)); err == nil {
		t.Fatal("expected error when project config path is a directory")
	}
}

func TestSaveThemeWritesConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	target := filepath.Join(tmp, DirName, "config.yaml")
	writeFile(t, target, "output:\n  format: light\n")

	orig := writableConfigPath
	writableConfigPath = func() (string, error) { return target, nil }
	t.Cleanup(func() { writableConfigPath = orig })

	if err := Initialize(WithWorkingDir(tmp), WithHomeDir(tmp)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if err := SaveTheme("dracula"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "theme: dracula") {
		t.Fatalf("expected theme persisted, got:\n%s", text)
	}
	if !strings.Contains(text, "format: light") {
		t.Fatalf("expected existing settings preserved, got:\n%s", text)
	}
	if got := GetString(KeyTheme); got != "dracula" {
		t.Fatalf("expected runtime theme updated, got %q", got)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
