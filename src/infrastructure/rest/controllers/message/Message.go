package message

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	useCaseMessage "go-scheduler-api/src/application/usecases/message"
	"go-scheduler-api/src/domain/common"
	domainErrors "go-scheduler-api/src/domain/errors"
	domainMessage "go-scheduler-api/src/domain/message"
	logger "go-scheduler-api/src/infrastructure/logger"
	"go-scheduler-api/src/infrastructure/rest/controllers"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type IMessageController interface {
	Status(ctx *gin.Context)
	SendMessage(ctx *gin.Context)
	GetMessages(ctx *gin.Context)
	GetMessage(ctx *gin.Context)
	DeleteMessages(ctx *gin.Context)
}

type MessageController struct {
	commonService  common.CommonService
	messageUseCase useCaseMessage.IMessageUseCase
	Logger         *logger.Logger
}

func NewMessageController(
	commonService common.CommonService,
	messageUseCase useCaseMessage.IMessageUseCase,
	loggerInstance *logger.Logger,
) IMessageController {
	return &MessageController{
		commonService:  commonService,
		messageUseCase: messageUseCase,
		Logger:         loggerInstance,
	}
}

func (c *MessageController) Status(ctx *gin.Context) {
	status := c.messageUseCase.Status()
	ctx.JSON(http.StatusOK, StatusResponse{
		Message:       "API is running",
		Time:          status.Time.Format(domainMessage.TimestampLayout),
		TotalMessages: status.Total,
	})
}

func (c *MessageController) SendMessage(ctx *gin.Context) {
	var request NewMessageRequest
	if err := controllers.BindJSON(ctx, &request); err != nil {
		c.Logger.Warn("Couldn't process request - invalid request", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.commonService.AppendValidationErrors(ctx, ve, request)
			return
		}
		_ = ctx.Error(domainErrors.NewAppError(err, domainErrors.ValidationError))
		return
	}

	created, err := c.messageUseCase.Submit(request.Contact, request.Message)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, SubmitResponse{
		Status:    "Message sent successfully",
		MessageID: created.ID,
		Timestamp: created.Timestamp(),
	})
}

func (c *MessageController) GetMessages(ctx *gin.Context) {
	messages, err := c.messageUseCase.GetAll()
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, MessagesResponse{
		Messages: ToMessageResponses(messages),
		Total:    len(*messages),
	})
}

func (c *MessageController) GetMessage(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		c.Logger.Warn("Invalid message id", zap.String("id", ctx.Param("id")))
		_ = ctx.Error(domainErrors.NewAppError(errors.New("message id must be an integer"), domainErrors.ValidationError))
		return
	}

	found, err := c.messageUseCase.GetByID(id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, ToMessageResponse(found))
}

func (c *MessageController) DeleteMessages(ctx *gin.Context) {
	deleted, err := c.messageUseCase.DeleteAll()
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, DeleteResponse{
		Message:      fmt.Sprintf("Deleted %d messages", deleted),
		TotalDeleted: deleted,
	})
}
