package policy

import (
	"fmt"
	"regexp"
	"strings"
)

// AWS Backup schedule expressions use six-field cron with the AWS extensions
// (?, L, W, #). The control plane rejects malformed expressions at plan
// creation, so this only guards against sending obvious garbage.
var (
	cronWrapperMatcher = regexp.MustCompile(`^cron\((.+)\)$`)
	cronFieldMatcher   = regexp.MustCompile(`^[0-9A-Za-z*?,\-/#LW]+$`)
)

func ValidateSchedule(expr string) error {
	m := cronWrapperMatcher.FindStringSubmatch(strings.TrimSpace(expr))
	if m == nil {
		return fmt.Errorf("invalid schedule format: %s", expr)
	}
	fields := strings.Fields(m[1])
	if len(fields) != 6 {
		return fmt.Errorf("invalid schedule %s: expected 6 fields, got %d", expr, len(fields))
	}
	for _, field := range fields {
		if !cronFieldMatcher.MatchString(field) {
			return fmt.Errorf("invalid schedule field: %s", field)
		}
	}
	return nil
}
