package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"billdesk/internal/bridge"
	"billdesk/internal/render"
	"billdesk/internal/template"
)

// SettingsView edits the business profile and selects the active template.
type SettingsView struct {
	session Session
	client  *bridge.Client
	resolve AssetResolver

	Settings        bridge.Settings
	CustomTemplates []template.CustomTemplate
}

func NewSettingsView(ctx context.Context, session Session, client *bridge.Client, resolve AssetResolver) (*SettingsView, error) {
	v := &SettingsView{session: session, client: client, resolve: resolve}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := client.GetSettings(gctx)
		if err != nil {
			return err
		}
		v.Settings = s
		return nil
	})
	g.Go(func() error {
		cts, err := client.GetCustomTemplates(gctx)
		if err != nil {
			return err
		}
		v.CustomTemplates = cts
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return v, nil
}

// Save persists the edited profile and keeps the local snapshot in sync
// with what the host stored.
func (v *SettingsView) Save(ctx context.Context) error {
	saved, err := v.client.UpdateSettings(ctx, v.Settings)
	if err != nil {
		return err
	}
	v.Settings = saved
	return nil
}

// PreviewTemplate renders the sample invoice with the given template
// reference, for the "Preview" button next to the template selector. Works
// against incomplete draft settings thanks to the renderer's sample
// fallback.
func (v *SettingsView) PreviewTemplate(ref string) *render.Node {
	spec := template.ResolveActive(ref, v.CustomTemplates)
	profile := Profile(v.Settings, v.resolve)
	customer, meta, items, totals := render.SampleInvoice()
	return render.Render(&profile, customer, meta, items, totals, spec)
}
