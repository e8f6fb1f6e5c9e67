package memory

import (
	domainTemplate "go-scheduler-api/src/domain/template"
	logger "go-scheduler-api/src/infrastructure/logger"
)

type TemplateRepositoryInterface interface {
	GetAll() (*[]domainTemplate.Template, error)
}

// TemplateRepository is filled once at startup and only read afterwards.
type TemplateRepository struct {
	templates []domainTemplate.Template
	Logger    *logger.Logger
}

func NewTemplateRepository(seeds []TemplateSeed, loggerInstance *logger.Logger) TemplateRepositoryInterface {
	templates := make([]domainTemplate.Template, len(seeds))
	for i, s := range seeds {
		templates[i] = domainTemplate.Template{ID: s.ID, Name: s.Name, Content: s.Content}
	}
	return &TemplateRepository{templates: templates, Logger: loggerInstance}
}

func (r *TemplateRepository) GetAll() (*[]domainTemplate.Template, error) {
	out := make([]domainTemplate.Template, len(r.templates))
	copy(out, r.templates)
	return &out, nil
}
