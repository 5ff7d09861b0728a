// Package view builds the per-route view models of the desktop app. Each
// view receives an immutable session snapshot and a bridge client, fetches
// everything it needs up front (joining concurrent boundary calls
// fail-fast), and owns its editing state until the user navigates away.
// Navigation discards the view; nothing is autosaved.
package view

import (
	"billdesk/internal/bridge"
	"billdesk/internal/render"
)

// Session is the immutable principal snapshot handed to view constructors.
// Authorization state flows from here, never from inspecting rendered
// output.
type Session struct {
	UserID   int64
	Username string
	Role     string
}

// Admin-only actions. Everything else is available to both roles.
var adminOnly = map[string]bool{
	"delete_invoice":  true,
	"manage_settings": true,
	"manage_users":    true,
	"view_audit_log":  true,
	"manage_payroll":  true,
}

// Can reports whether the session's principal may perform an action. Views
// construct only the controls the principal is authorized for.
func (s Session) Can(action string) bool {
	if s.Role == "Admin" {
		return true
	}
	return !adminOnly[action]
}

// AssetResolver maps a stored asset path (logo, signature, QR code) to a
// displayable URI. Resolution is a host concern; the renderer only decides
// placement.
type AssetResolver func(path string) string

// Profile converts boundary settings into the renderer's read-only profile,
// resolving asset paths along the way.
func Profile(s bridge.Settings, resolve AssetResolver) render.BusinessProfile {
	if resolve == nil {
		resolve = func(p string) string { return p }
	}
	asset := func(p string) string {
		if p == "" {
			return ""
		}
		return resolve(p)
	}
	return render.BusinessProfile{
		BusinessName:    s.BusinessName,
		Address:         s.BusinessAddress,
		Phone:           s.BusinessPhone,
		Email:           s.BusinessEmail,
		Tagline:         s.BusinessTagline,
		CurrencySymbol:  s.CurrencySymbol,
		TaxLabel:        s.TaxLabel,
		LogoURI:         asset(s.LogoPath),
		SignatureURI:    asset(s.SignaturePath),
		QRCodeURI:       asset(s.QRCodePath),
		FooterText:      s.DefaultFooter,
		BankName:        s.BankName,
		BankAccountName: s.BankAccountName,
		BankAccountNo:   s.BankAccountNo,
		BankBranch:      s.BankBranch,
	}
}
