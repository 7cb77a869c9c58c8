// Package form parses and validates request payloads.
package form

import (
	"encoding/json"
	"fmt"
	"net/http"

	"lightswitch.app/internal/config"
	"lightswitch.app/internal/model"
)

// ThemeForm is the JSON body of the set-theme action.
type ThemeForm struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"`
}

// NewThemeForm decodes and validates the set-theme payload. Any payload a
// client could forge comes back as an error, never as a panic.
func NewThemeForm(r *http.Request) (*ThemeForm, error) {
	var f ThemeForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("form: undecodable theme payload: %w", err)
	}

	if err := config.Validator().Struct(&f); err != nil {
		return nil, fmt.Errorf("form: invalid theme payload: %w", err)
	}
	return &f, nil
}

// ParsedTheme returns the validated theme.
func (f *ThemeForm) ParsedTheme() model.Theme {
	theme, _ := model.ParseTheme(f.Theme)
	return theme
}
