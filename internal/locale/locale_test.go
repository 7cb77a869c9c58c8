package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   []string
	}{
		{
			name: "absent header",
			want: []string{"en-US"},
		},
		{
			name:   "weighted segment discarded",
			header: "en-US,fr;q=0.8",
			want:   []string{"en-US"},
		},
		{
			name:   "multiple plain tags keep order",
			header: "fr-CA, de-DE, en-US",
			want:   []string{"fr-CA", "de-DE", "en-US"},
		},
		{
			name:   "only weighted segments",
			header: "fr;q=0.9, de;q=0.8",
			want:   []string{"en-US"},
		},
		{
			name:   "wildcard ignored",
			header: "*, en-GB",
			want:   []string{"en-GB"},
		},
		{
			name:   "garbage ignored",
			header: "!!, en-US",
			want:   []string{"en-US"},
		},
		{
			name:   "bare language",
			header: "fr",
			want:   []string{"fr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHeader(tt.header))
		})
	}
}
