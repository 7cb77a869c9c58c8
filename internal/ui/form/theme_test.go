package form

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightswitch.app/internal/model"
)

func TestNewThemeForm(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    model.Theme
		wantErr bool
	}{
		{
			name: "dark",
			body: `{"theme":"dark"}`,
			want: model.ThemeDark,
		},
		{
			name: "light",
			body: `{"theme":"light"}`,
			want: model.ThemeLight,
		},
		{
			name:    "case sensitive",
			body:    `{"theme":"Dark"}`,
			wantErr: true,
		},
		{
			name:    "unknown theme",
			body:    `{"theme":"sepia"}`,
			wantErr: true,
		},
		{
			name:    "empty theme",
			body:    `{"theme":""}`,
			wantErr: true,
		},
		{
			name:    "missing theme",
			body:    `{}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `theme=dark`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/_actions/set-theme",
				strings.NewReader(tt.body))

			f, err := NewThemeForm(r)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.ParsedTheme())
		})
	}
}
