package console

import (
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
)

// Placeholder stands in for any missing value.
const Placeholder = "—"

const dateLayout = "2006-01-02 15:04"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// FormatDate renders an ISO timestamp as "YYYY-MM-DD HH:MM" in the
// timestamp's own offset. Absent values give "". Values that do not parse
// also give "" together with an error.
func FormatDate(v models.Scalar) (string, error) {
	if v.IsAbsent() {
		return "", nil
	}
	if v.Kind() != models.ScalarString {
		return "", fmt.Errorf("%w: timestamp %q is not a string", types.ErrMalformedPayload, v.Text())
	}

	s := strings.TrimSpace(v.Text())
	if s == "" {
		return "", nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: unparseable timestamp %q", types.ErrMalformedPayload, s)
}

// maxSeconds is 2^63, the first float64 past the int64 range.
const maxSeconds = float64(1 << 63)

// FormatMinSec renders fractional minutes as "{m}m {ss}s", rounded to the
// nearest second. Absent, non-numeric, negative, non-finite and
// unrepresentably large values give the placeholder.
func FormatMinSec(v models.Scalar) string {
	mins, ok := v.Float()
	if !ok || math.IsNaN(mins) || math.IsInf(mins, 0) || mins < 0 {
		return Placeholder
	}

	secs := math.Round(mins * 60)
	if secs >= maxSeconds {
		return Placeholder
	}

	total := int64(secs)
	return fmt.Sprintf("%dm %02ds", total/60, total%60)
}

// TextOrPlaceholder renders v, substituting the placeholder for absent or
// empty values.
func TextOrPlaceholder(v models.Scalar) string {
	if s := v.Text(); s != "" {
		return s
	}
	return Placeholder
}

var labelPolicy = bluemonday.StrictPolicy()

// cleanLabel strips markup from a free-form label. The result is plain
// text; escaping is left to the page renderer.
func cleanLabel(s string) string {
	return strings.TrimSpace(html.UnescapeString(labelPolicy.Sanitize(s)))
}
