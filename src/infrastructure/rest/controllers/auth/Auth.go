package auth

import (
	"errors"
	"net/http"

	useCaseAuth "go-scheduler-api/src/application/usecases/auth"
	"go-scheduler-api/src/domain/common"
	domainErrors "go-scheduler-api/src/domain/errors"
	logger "go-scheduler-api/src/infrastructure/logger"
	"go-scheduler-api/src/infrastructure/rest/controllers"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type IAuthController interface {
	Login(ctx *gin.Context)
}

type AuthController struct {
	commonService common.CommonService
	authUseCase   useCaseAuth.IAuthUseCase
	Logger        *logger.Logger
}

func NewAuthController(commonService common.CommonService, authUsecase useCaseAuth.IAuthUseCase, loggerInstance *logger.Logger) IAuthController {
	return &AuthController{
		commonService: commonService,
		authUseCase:   authUsecase,
		Logger:        loggerInstance,
	}
}

func (c *AuthController) Login(ctx *gin.Context) {
	c.Logger.Info("User login request")
	var request LoginRequest
	if err := controllers.BindJSON(ctx, &request); err != nil {
		c.Logger.Warn("Error binding JSON for login", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.commonService.AppendValidationErrors(ctx, ve, request)
			return
		}
		_ = ctx.Error(domainErrors.NewAppError(err, domainErrors.ValidationError))
		return
	}

	domainUser, authTokens, err := c.authUseCase.Login(request.Email, request.Password)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{
		Success: true,
		User: UserData{
			Email: domainUser.Email,
			Name:  domainUser.Name,
		},
		Token:                    authTokens.AccessToken,
		ExpirationAccessDateTime: authTokens.ExpirationAccessDateTime,
	})
}
