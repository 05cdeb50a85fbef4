package repository

import (
    "os"
    "path/filepath"
    "testing"
)

func writeAdminAccess(t *testing.T, dir, contents string) {
    t.Helper()
    if err := os.MkdirAll(dir, 0o755); err != nil {
        t.Fatalf("mkdir: %v", err)
    }
    if err := os.WriteFile(filepath.Join(dir, "admin-access.json"), []byte(contents), 0o600); err != nil {
        t.Fatalf("write admin access file: %v", err)
    }
}

func TestAdminAccessRepo_VerifySecret(t *testing.T) {
    dir := t.TempDir()
    writeAdminAccess(t, dir, `{"secretKey": "hunter2"}`)
    repo := NewAdminAccessRepo(dir)

    if !repo.VerifySecret("hunter2") {
        t.Fatalf("expected matching secret to be accepted")
    }
    if repo.VerifySecret("hunter3") {
        t.Fatalf("expected wrong secret to be rejected")
    }
    if repo.VerifySecret("") {
        t.Fatalf("expected empty secret to be rejected")
    }
}

func TestAdminAccessRepo_DeniesWithoutFile(t *testing.T) {
    repo := NewAdminAccessRepo(t.TempDir())
    if repo.VerifySecret("anything") {
        t.Fatalf("expected denial when the access file is absent")
    }
}

func TestAdminAccessRepo_DeniesOnCorruptOrEmptyFile(t *testing.T) {
    dir := t.TempDir()
    writeAdminAccess(t, dir, `not json`)
    repo := NewAdminAccessRepo(dir)
    if repo.VerifySecret("anything") {
        t.Fatalf("expected denial on corrupt file")
    }

    // An empty configured secret must not match an empty header.
    writeAdminAccess(t, dir, `{"secretKey": ""}`)
    if repo.VerifySecret("") {
        t.Fatalf("expected denial on empty configured secret")
    }
}
