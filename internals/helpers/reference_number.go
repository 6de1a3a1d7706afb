package helper

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentRefPrefix = "APT"
	IssueReportRefPrefix = "IR"
)

// GenerateReferenceNumber returns PREFIX-yyyyMMdd-XXXXXXXX where the suffix is
// the first 8 hex digits of a random UUID, upper-cased.
func GenerateReferenceNumber(prefix string, now time.Time) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + now.UTC().Format("20060102") + "-" + strings.ToUpper(hex[:8])
}
