// Package handlers is the HTTP presentation layer. Handlers hold no business
// rules; they translate requests into service calls and service errors into
// status codes.
package handlers

import (
	"boutique-pos/internal/auth"
	"boutique-pos/internal/cart"
	"boutique-pos/internal/catalog"
	"boutique-pos/internal/settings"
)

// Handler bundles the explicitly constructed services. Everything is passed
// in by reference; there is no ambient global state.
type Handler struct {
	Catalog  *catalog.Store
	Cart     *cart.Engine
	Session  *auth.Session
	Settings *settings.Service
	Printer  settings.Printer
}

func New(cat *catalog.Store, eng *cart.Engine, session *auth.Session, cfg *settings.Service, printer settings.Printer) *Handler {
	return &Handler{
		Catalog:  cat,
		Cart:     eng,
		Session:  session,
		Settings: cfg,
		Printer:  printer,
	}
}
