package repository

import (
    "encoding/json"
    "os"
    "path/filepath"
)

// AdminAccessRepo reads the administrative secret from a small JSON
// object file (data/admin-access.json).  The file is provisioned by
// the operator and never written by the application.  A missing or
// unreadable file means every credential is rejected.
type AdminAccessRepo struct {
    path string // path to admin-access.json
}

// adminAccessFile is the on-disk shape of the admin secret file.
type adminAccessFile struct {
    SecretKey string `json:"secretKey"`
}

// NewAdminAccessRepo constructs an AdminAccessRepo reading from
// dataDir/admin-access.json.
func NewAdminAccessRepo(dataDir string) *AdminAccessRepo {
    return &AdminAccessRepo{path: filepath.Join(dataDir, "admin-access.json")}
}

// VerifySecret compares the supplied credential against the configured
// secret.  Absence or corruption of the configuration file denies all
// access.  An empty configured secret also denies all access so that a
// half-provisioned file cannot be bypassed with an empty header.
func (r *AdminAccessRepo) VerifySecret(supplied string) bool {
    data, err := os.ReadFile(r.path)
    if err != nil {
        return false
    }
    var f adminAccessFile
    if err := json.Unmarshal(data, &f); err != nil {
        return false
    }
    return f.SecretKey != "" && supplied == f.SecretKey
}
