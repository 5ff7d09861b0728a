package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"billdesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTemplateRepo struct {
	templates map[int64]*model.CustomTemplate
	nextID    int64
}

func (r *fakeTemplateRepo) Create(_ context.Context, t *model.CustomTemplate) error {
	t.ID = r.nextID
	t.CreatedAt = time.Now()
	r.nextID++
	stored := *t
	r.templates[t.ID] = &stored
	return nil
}
func (r *fakeTemplateRepo) Update(_ context.Context, t *model.CustomTemplate) error {
	if _, ok := r.templates[t.ID]; !ok {
		return errors.New("record not found")
	}
	stored := *t
	r.templates[t.ID] = &stored
	return nil
}
func (r *fakeTemplateRepo) Delete(_ context.Context, id int64) error {
	delete(r.templates, id)
	return nil
}
func (r *fakeTemplateRepo) FindByID(_ context.Context, id int64) (*model.CustomTemplate, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return t, nil
}
func (r *fakeTemplateRepo) List(_ context.Context) ([]model.CustomTemplate, error) {
	var out []model.CustomTemplate
	for _, t := range r.templates {
		out = append(out, *t)
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings model.Settings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*model.Settings, error) {
	s := r.settings
	return &s, nil
}
func (r *fakeSettingsRepo) Save(_ context.Context, s *model.Settings) error {
	r.settings = *s
	return nil
}

func newTemplateFixture(activeRef string) (*fakeTemplateRepo, *fakeSettingsRepo, TemplateService) {
	templateRepo := &fakeTemplateRepo{templates: make(map[int64]*model.CustomTemplate), nextID: 1}
	settingsRepo := &fakeSettingsRepo{settings: model.Settings{
		ID:             1,
		BusinessName:   "My Business",
		CurrencySymbol: "$",
		TaxLabel:       "Tax",
		TemplateType:   activeRef,
	}}
	audit := &recordingAudit{}
	settingsService := NewSettingsService(settingsRepo, audit)
	svc := NewTemplateService(templateRepo, settingsService, audit)
	return templateRepo, settingsRepo, svc
}

func TestDeleteActiveTemplateRevertsToBasic(t *testing.T) {
	repo, settingsRepo, svc := newTemplateFixture("Custom-1")

	id, err := svc.CreateTemplate(context.Background(), Actor{}, SaveTemplateRequest{Name: "Letterhead"})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	require.NoError(t, svc.DeleteTemplate(context.Background(), Actor{}, id))

	_, err = repo.FindByID(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, "Basic", settingsRepo.settings.TemplateType)
}

func TestDeleteInactiveTemplateKeepsActiveRef(t *testing.T) {
	_, settingsRepo, svc := newTemplateFixture("Professional")

	id, err := svc.CreateTemplate(context.Background(), Actor{}, SaveTemplateRequest{Name: "Letterhead"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTemplate(context.Background(), Actor{}, id))
	assert.Equal(t, "Professional", settingsRepo.settings.TemplateType)
}

func TestUpdateTemplatePreservesCreatedAt(t *testing.T) {
	repo, _, svc := newTemplateFixture("Basic")

	id, err := svc.CreateTemplate(context.Background(), Actor{}, SaveTemplateRequest{
		Name:        "Original",
		AccentColor: "#ff0000",
	})
	require.NoError(t, err)
	created := repo.templates[id].CreatedAt

	require.NoError(t, svc.UpdateTemplate(context.Background(), Actor{}, SaveTemplateRequest{
		ID:          id,
		Name:        "Renamed",
		AccentColor: "#00ff00",
	}))

	stored := repo.templates[id]
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, "#00ff00", stored.AccentColor)
	assert.Equal(t, created, stored.CreatedAt)
}

func TestGetTemplateNotFound(t *testing.T) {
	_, _, svc := newTemplateFixture("Basic")
	_, err := svc.GetTemplate(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template not found")
}
