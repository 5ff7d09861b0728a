package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"billdesk/internal/bridge"
	"billdesk/internal/render"
	"billdesk/internal/template"
)

// TemplatesView is the template gallery: the four builtins plus the user's
// custom templates, with the active one marked.
type TemplatesView struct {
	session Session
	client  *bridge.Client
	resolve AssetResolver

	Settings        bridge.Settings
	Builtins        []template.Builtin
	CustomTemplates []template.CustomTemplate
}

func NewTemplatesView(ctx context.Context, session Session, client *bridge.Client, resolve AssetResolver) (*TemplatesView, error) {
	v := &TemplatesView{
		session:  session,
		client:   client,
		resolve:  resolve,
		Builtins: template.Builtins(),
	}

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

// ActiveRef returns the profile's active-template reference.
func (v *TemplatesView) ActiveRef() string {
	return v.Settings.TemplateType
}

// IsActive reports whether the given reference is the active template.
func (v *TemplatesView) IsActive(ref string) bool {
	return v.Settings.TemplateType == ref
}

// Use makes a builtin or custom reference the active template.
func (v *TemplatesView) Use(ctx context.Context, ref string) error {
	v.Settings.TemplateType = ref
	saved, err := v.client.UpdateSettings(ctx, v.Settings)
	if err != nil {
		return err
	}
	v.Settings = saved
	return nil
}

// Delete removes a custom template. The host resets the active reference to
// Basic when the deleted template was active; mirror that locally.
func (v *TemplatesView) Delete(ctx context.Context, id int64) error {
	if err := v.client.DeleteCustomTemplate(ctx, id); err != nil {
		return err
	}
	if v.Settings.TemplateType == template.CustomRef(id) {
		v.Settings.TemplateType = "Basic"
	}
	out := v.CustomTemplates[:0]
	for _, ct := range v.CustomTemplates {
		if ct.ID != id {
			out = append(out, ct)
		}
	}
	v.CustomTemplates = out
	return nil
}

// Preview renders the sample invoice with any template reference.
func (v *TemplatesView) Preview(ref string) *render.Node {
	spec := template.ResolveActive(ref, v.CustomTemplates)
	profile := Profile(v.Settings, v.resolve)
	customer, meta, items, totals := render.SampleInvoice()
	return render.Render(&profile, customer, meta, items, totals, spec)
}

// DesignerView is the custom-template designer: one editable record with a
// live preview.
type DesignerView struct {
	session Session
	client  *bridge.Client
	resolve AssetResolver

	Settings bridge.Settings
	Draft    template.CustomTemplate
}

// NewDesignerView opens the designer. With id 0 it starts a fresh draft
// with the documented defaults; otherwise it loads the stored record. The
// settings fetch may fail without killing the designer: the preview then
// runs against the renderer's sample profile.
func NewDesignerView(ctx context.Context, session Session, client *bridge.Client, id int64, resolve AssetResolver) (*DesignerView, error) {
	v := &DesignerView{session: session, client: client, resolve: resolve}

	if id != 0 {
		ct, err := client.GetCustomTemplate(ctx, id)
		if err != nil {
			return nil, err
		}
		v.Draft = ct
	} else {
		v.Draft = template.CustomTemplate{
			HeaderBgColor:       template.DefaultHeaderBgColor,
			HeaderTextColor:     template.DefaultHeaderTextColor,
			AccentColor:         template.DefaultAccentColor,
			BorderColor:         template.DefaultBorderColor,
			FontFamily:          template.DefaultFontFamily,
			LayoutStyle:         template.LayoutClassic,
			HeaderPosition:      template.HeaderLeft,
			TableStyle:          template.TableStriped,
			BorderStyle:         template.BorderSolid,
			ShowLogo:            true,
			ShowBusinessAddress: true,
			ShowBusinessPhone:   true,
			ShowBusinessEmail:   true,
			ShowTaxColumn:       true,
			ShowDescriptionCol:  true,
		}
	}

	if s, err := client.GetSettings(ctx); err == nil {
		v.Settings = s
	}
	return v, nil
}

// Preview renders the sample invoice with the current draft parameters.
func (v *DesignerView) Preview() *render.Node {
	spec := template.FromCustom(v.Draft)
	profile := Profile(v.Settings, v.resolve)
	customer, meta, items, totals := render.SampleInvoice()
	return render.Render(&profile, customer, meta, items, totals, spec)
}

// Save creates or updates the draft at the host and returns its id.
func (v *DesignerView) Save(ctx context.Context) (int64, error) {
	if v.Draft.ID != 0 {
		return v.Draft.ID, v.client.UpdateCustomTemplate(ctx, v.Draft)
	}
	id, err := v.client.CreateCustomTemplate(ctx, v.Draft)
	if err != nil {
		return 0, err
	}
	v.Draft.ID = id
	return id, nil
}
