package storage

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultFolder   = "general"
	DefaultFileName = "file"
)

// DefaultFolders are created when a storage root is initialised.
var DefaultFolders = []string{"news", "users", "reports", "general", "tourist-spots"}

const blacklist = `/\:*?"<>|`

// cleanName folds accents away (NFKD, marks dropped) and replaces control and
// blacklisted characters with '_'.
func cleanName(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsControl(r) || strings.ContainsRune(blacklist, r) || r > unicode.MaxASCII:
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// SafeFolderName lower-cases and sanitizes a folder; empty or dot-only names
// become "general".
func SafeFolderName(folder string) string {
	safe := strings.ToLower(cleanName(folder))
	if strings.Trim(safe, ". _") == "" {
		return DefaultFolder
	}
	return safe
}

func SafeFileName(name string) string {
	safe := cleanName(name)
	if strings.Trim(safe, ". _") == "" {
		return DefaultFileName
	}
	return safe
}

// UniqueFileName returns {yyyyMMdd_HHmmss}_{uuid}_{sanitized original}.
func UniqueFileName(original string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s", now.UTC().Format("20060102_150405"), uuid.NewString(), SafeFileName(original))
}
