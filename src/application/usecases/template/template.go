package template

import (
	domainTemplate "go-scheduler-api/src/domain/template"
	logger "go-scheduler-api/src/infrastructure/logger"
	"go-scheduler-api/src/infrastructure/repository/memory"

	"go.uber.org/zap"
)

type ITemplateUseCase interface {
	GetAll() (*[]domainTemplate.Template, error)
}

type TemplateUseCase struct {
	templateRepository memory.TemplateRepositoryInterface
	Logger             *logger.Logger
}

func NewTemplateUseCase(templateRepository memory.TemplateRepositoryInterface, loggerInstance *logger.Logger) ITemplateUseCase {
	return &TemplateUseCase{
		templateRepository: templateRepository,
		Logger:             loggerInstance,
	}
}

func (s *TemplateUseCase) GetAll() (*[]domainTemplate.Template, error) {
	templates, err := s.templateRepository.GetAll()
	if err != nil {
		s.Logger.Error("Error getting templates", zap.Error(err))
		return nil, err
	}
	return templates, nil
}
