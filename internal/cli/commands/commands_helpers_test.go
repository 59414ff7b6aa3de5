package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"Teller/internal/cli/auth"
	"Teller/internal/config"
)

// testConfig собирает конфигурацию с артефактами (токены/база) в temp-каталоге.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		ServerURL:       serverURL,
		CredentialsFile: filepath.Join(dir, "credentials.json"),
		ClientDBPath:    filepath.Join(dir, "tellcli.db"),
	}
}

// loginAs кладёт готовую пару токенов в файл учётных данных.
func loginAs(t *testing.T, cfg *config.Config, username string) {
	t.Helper()
	store := &auth.FileStore{Path: cfg.CredentialsFile}
	err := store.Save(auth.Credentials{
		AccessToken:  "test-access",
		RefreshToken: "test-refresh",
		Username:     username,
		Role:         "ADMIN",
	})
	if err != nil {
		t.Fatalf("seeding credentials: %v", err)
	}
}

// captureOut перенаправляет вывод команд в буфер на время теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := Out
	Out = buf
	t.Cleanup(func() { Out = prev })
	return buf
}
