package repository

import (
	"context"

	"billdesk/internal/model"

	"gorm.io/gorm"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *model.CustomTemplate) error
	Update(ctx context.Context, template *model.CustomTemplate) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.CustomTemplate, error)
	List(ctx context.Context) ([]model.CustomTemplate, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, template *model.CustomTemplate) error {
	return GetDB(ctx, r.db).Create(template).Error
}

func (r *templateRepository) Update(ctx context.Context, template *model.CustomTemplate) error {
	return GetDB(ctx, r.db).Save(template).Error
}

func (r *templateRepository) Delete(ctx context.Context, id int64) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.CustomTemplate{}).Error
}

func (r *templateRepository) FindByID(ctx context.Context, id int64) (*model.CustomTemplate, error) {
	var template model.CustomTemplate
	if err := GetDB(ctx, r.db).First(&template, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) List(ctx context.Context) ([]model.CustomTemplate, error) {
	var templates []model.CustomTemplate
	if err := GetDB(ctx, r.db).Order("created_at asc").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}
