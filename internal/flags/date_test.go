package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lsg.dev/pkg/lsg/internal/config"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		value string
		want  Date
		ok    bool
	}{
		{"date", Date{Kind: DateDefault}, true},
		{"relative", Date{Kind: DateRelative}, true},
		{"+2006-01-02", Date{Kind: DateCustom, Layout: "2006-01-02"}, true},
		{"iso", Date{}, false},
		{"", Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := parseDate(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateFromArgs(t *testing.T) {
	_, ok := dateFromArgs(parseArgs(t))
	assert.False(t, ok)

	got, ok := dateFromArgs(parseArgs(t, "--date", "relative"))
	assert.True(t, ok)
	assert.Equal(t, Date{Kind: DateRelative}, got)
}

func TestDateFromConfigBadValueFallsThrough(t *testing.T) {
	_, ok := dateFromConfig(&config.Config{Date: ptr("yesterday"), Origin: "test"})
	assert.False(t, ok)
}
