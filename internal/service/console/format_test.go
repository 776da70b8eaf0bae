package console

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
)

func scalar(t *testing.T, raw string) models.Scalar {
	t.Helper()
	var s models.Scalar
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"utc", `"2024-01-02T03:04:05Z"`, "2024-01-02 03:04", false},
		{"fraction", `"2024-01-02T03:04:05.123456Z"`, "2024-01-02 03:04", false},
		{"keeps own offset", `"2024-01-02T03:04:05+06:00"`, "2024-01-02 03:04", false},
		{"naive", `"2024-01-02T03:04:05"`, "2024-01-02 03:04", false},
		{"naive minutes", `"2024-01-02T03:04"`, "2024-01-02 03:04", false},
		{"space separated", `"2024-01-02 03:04:05"`, "2024-01-02 03:04", false},
		{"null", `null`, "", false},
		{"empty", `""`, "", false},
		{"garbage", `"yesterday"`, "", true},
		{"number", `1704164645`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(scalar(t, tt.raw))
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrMalformedPayload)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	got, err := FormatDate(models.Scalar{})
	assert.NoError(t, err)
	assert.Empty(t, got, "absent field")
}

func TestFormatMinSec(t *testing.T) {
	tests := map[string]string{
		`2.5`:     "2m 30s",
		`0`:       "0m 00s",
		`1.99999`: "2m 00s",
		`0.01`:    "0m 01s",
		`75.25`:   "75m 15s",
		`"3"`:     "3m 00s",
		`null`:    Placeholder,
		`-1`:      Placeholder,
		`"NaN"`:   Placeholder,
		`"soon"`:  Placeholder,
		`""`:      Placeholder,
		`true`:    Placeholder,
		`1.6e17`:  Placeholder,
		`1e300`:   Placeholder,
	}

	for raw, want := range tests {
		assert.Equal(t, want, FormatMinSec(scalar(t, raw)), raw)
	}
	assert.Equal(t, Placeholder, FormatMinSec(models.Scalar{}))
	assert.Equal(t, "1000000000000000m 00s", FormatMinSec(models.NumberScalar(1e15)))
}

func TestTextOrPlaceholder(t *testing.T) {
	assert.Equal(t, "12", TextOrPlaceholder(scalar(t, `12`)))
	assert.Equal(t, "0", TextOrPlaceholder(scalar(t, `0`)))
	assert.Equal(t, "x", TextOrPlaceholder(scalar(t, `"x"`)))
	assert.Equal(t, Placeholder, TextOrPlaceholder(scalar(t, `""`)))
	assert.Equal(t, Placeholder, TextOrPlaceholder(scalar(t, `null`)))
	assert.Equal(t, Placeholder, TextOrPlaceholder(scalar(t, `[1]`)))
}

func TestCleanLabel(t *testing.T) {
	assert.Equal(t, "ACTIVE", cleanLabel("<b>ACTIVE</b>"))
	assert.Equal(t, "Tom & Jerry", cleanLabel("Tom & Jerry"))
	assert.Equal(t, "", cleanLabel("<script>alert(1)</script>"))
}
