package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) FileStore {
	t.Helper()
	return FileStore{Path: filepath.Join(t.TempDir(), "credentials.json")}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)
	cid := int64(12)
	in := Credentials{
		AccessToken:  "tok-a",
		RefreshToken: "tok-r",
		Username:     "afi",
		Email:        "afi@example.com",
		Role:         "ADMIN",
		ClientID:     &cid,
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.AccessToken != in.AccessToken || out.RefreshToken != in.RefreshToken ||
		out.Username != in.Username || out.Role != in.Role {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.ClientID == nil || *out.ClientID != 12 {
		t.Fatalf("ClientID lost: %+v", out.ClientID)
	}
}

func TestFileStore_LoadMissingFileIsSignedOut(t *testing.T) {
	s := tempStore(t)
	creds, err := s.Load()
	if err != nil {
		t.Fatalf("Load on missing file must not error: %v", err)
	}
	if !creds.Empty() {
		t.Fatalf("expected empty credentials, got %+v", creds)
	}
}

func TestFileStore_ClearRemovesFile(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(Credentials{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(s.Path); !os.IsNotExist(err) {
		t.Fatalf("credentials file must be removed, stat err=%v", err)
	}
	// повторный Clear — не ошибка
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestFileStore_FilePermissions(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(Credentials{AccessToken: "a"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(s.Path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("credentials file mode = %o, want 600", perm)
	}
}
