package ui

import (
	"lightswitch.app/internal/http/mux"
	"lightswitch.app/internal/storage"
	"lightswitch.app/internal/template"
)

type handler struct {
	router *mux.ServeMux
	store  *storage.Storage
	tpl    *template.Engine
}
