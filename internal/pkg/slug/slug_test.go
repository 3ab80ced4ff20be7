package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Widget", want: "widget"},
		{name: "spaces and punctuation", input: "  Cloud Hosting & Backup!  ", want: "cloud-hosting-backup"},
		{name: "diacritics", input: "Café Résumé", want: "cafe-resume"},
		{name: "collapses separators", input: "a---b___c", want: "a-b-c"},
		{name: "nothing usable", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

func TestMakeTruncates(t *testing.T) {
	got := Make(strings.Repeat("ab ", 100))
	assert.LessOrEqual(t, len(got), MaxLen)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "widget-2", WithSuffix("widget", 2))

	long := strings.Repeat("a", MaxLen)
	got := WithSuffix(long, 12)
	assert.Len(t, got, MaxLen)
	assert.True(t, strings.HasSuffix(got, "-12"))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("senior-go-engineer-2"))
	assert.False(t, Valid("Senior Go"))
	assert.False(t, Valid("-leading"))
	assert.False(t, Valid(""))
}
