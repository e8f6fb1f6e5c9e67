package schedule

import (
	"errors"
	"net/http"

	useCaseMessage "go-scheduler-api/src/application/usecases/message"
	useCaseTemplate "go-scheduler-api/src/application/usecases/template"
	"go-scheduler-api/src/domain/common"
	domainErrors "go-scheduler-api/src/domain/errors"
	domainMessage "go-scheduler-api/src/domain/message"
	logger "go-scheduler-api/src/infrastructure/logger"
	"go-scheduler-api/src/infrastructure/rest/controllers"
	messageController "go-scheduler-api/src/infrastructure/rest/controllers/message"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type IScheduleController interface {
	GetAll(ctx *gin.Context)
	Schedule(ctx *gin.Context)
	SendNow(ctx *gin.Context)
	GetTemplates(ctx *gin.Context)
	Health(ctx *gin.Context)
}

type ScheduleController struct {
	commonService   common.CommonService
	messageUseCase  useCaseMessage.IMessageUseCase
	templateUseCase useCaseTemplate.ITemplateUseCase
	Logger          *logger.Logger
}

func NewScheduleController(
	commonService common.CommonService,
	messageUseCase useCaseMessage.IMessageUseCase,
	templateUseCase useCaseTemplate.ITemplateUseCase,
	loggerInstance *logger.Logger,
) IScheduleController {
	return &ScheduleController{
		commonService:   commonService,
		messageUseCase:  messageUseCase,
		templateUseCase: templateUseCase,
		Logger:          loggerInstance,
	}
}

// GetAll returns the store split by status, plus the templates.
func (c *ScheduleController) GetAll(ctx *gin.Context) {
	scheduled, err := c.messageUseCase.GetByStatus(domainMessage.StatusScheduled)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	sent, err := c.messageUseCase.GetByStatus(domainMessage.StatusSent)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	templates, err := c.templateUseCase.GetAll()
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, BucketsResponse{
		Success: true,
		Data: Buckets{
			Scheduled: messageController.ToMessageResponses(scheduled),
			Sent:      messageController.ToMessageResponses(sent),
			Templates: toTemplateResponses(templates),
		},
	})
}

func (c *ScheduleController) Schedule(ctx *gin.Context) {
	var request ScheduleRequest
	if !c.bind(ctx, &request) {
		return
	}

	created, err := c.messageUseCase.Schedule(request.Content, request.Recipient, request.ScheduleTime, request.Type)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, MessageCreatedResponse{
		Success: true,
		Message: "Message scheduled successfully",
		Data:    messageController.ToMessageResponse(created),
	})
}

func (c *ScheduleController) SendNow(ctx *gin.Context) {
	var request SendNowRequest
	if !c.bind(ctx, &request) {
		return
	}

	created, err := c.messageUseCase.SendImmediate(request.Content, request.Recipient, request.Type)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, MessageCreatedResponse{
		Success: true,
		Message: "Message sent successfully",
		Data:    messageController.ToMessageResponse(created),
	})
}

func (c *ScheduleController) GetTemplates(ctx *gin.Context) {
	templates, err := c.templateUseCase.GetAll()
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, TemplatesResponse{Success: true, Data: toTemplateResponses(templates)})
}

func (c *ScheduleController) Health(ctx *gin.Context) {
	status := c.messageUseCase.Status()
	ctx.JSON(http.StatusOK, HealthResponse{
		Status:        "healthy",
		Timestamp:     status.Time.Format(domainMessage.TimestampLayout),
		Version:       common.APIVersion,
		TotalMessages: status.Total,
	})
}

func (c *ScheduleController) bind(ctx *gin.Context, request any) bool {
	err := controllers.BindJSON(ctx, request)
	if err == nil {
		return true
	}

	c.Logger.Warn("Couldn't process request - invalid request", zap.Error(err), zap.String("path", ctx.FullPath()))
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.commonService.AppendValidationErrors(ctx, ve, request)
		return false
	}
	_ = ctx.Error(domainErrors.NewAppError(err, domainErrors.ValidationError))
	return false
}
