package auth

import (
	"errors"
	"time"

	domainErrors "go-scheduler-api/src/domain/errors"
	domainUser "go-scheduler-api/src/domain/user"
	logger "go-scheduler-api/src/infrastructure/logger"
	"go-scheduler-api/src/infrastructure/repository/memory"
	"go-scheduler-api/src/infrastructure/security"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type IAuthUseCase interface {
	Login(email, password string) (*domainUser.User, *AuthTokens, error)
}

type AuthUseCase struct {
	UserRepository memory.UserRepositoryInterface
	JWTService     security.IJWTService
	Logger         *logger.Logger
}

func NewAuthUseCase(
	userRepository memory.UserRepositoryInterface,
	jwtService security.IJWTService,
	loggerInstance *logger.Logger,
) IAuthUseCase {
	return &AuthUseCase{
		UserRepository: userRepository,
		JWTService:     jwtService,
		Logger:         loggerInstance,
	}
}

type AuthTokens struct {
	AccessToken              string
	ExpirationAccessDateTime time.Time
}

var errBadCredentials = errors.New("email or password does not match")

func (s *AuthUseCase) Login(email, password string) (*domainUser.User, *AuthTokens, error) {
	s.Logger.Info("User login attempt", zap.String("email", email))

	user, err := s.UserRepository.GetByEmail(email)
	if err != nil {
		if domainErrors.IsType(err, domainErrors.NotFound) {
			s.Logger.Warn("Login failed: user not found", zap.String("email", email))
			return nil, nil, domainErrors.NewAppError(errBadCredentials, domainErrors.NotAuthenticated)
		}
		s.Logger.Error("Error getting user for login", zap.Error(err), zap.String("email", email))
		return nil, nil, err
	}

	if !checkPasswordHash(password, user.HashPassword) {
		s.Logger.Warn("Login failed: invalid password", zap.String("email", email))
		return nil, nil, domainErrors.NewAppError(errBadCredentials, domainErrors.NotAuthenticated)
	}

	accessToken, err := s.JWTService.GenerateJWTToken(user.Email, security.Access)
	if err != nil {
		s.Logger.Error("Error generating access token", zap.Error(err), zap.String("email", user.Email))
		return nil, nil, domainErrors.NewAppError(err, domainErrors.UnknownError)
	}

	s.Logger.Info("User login successful", zap.String("email", user.Email))
	return user, &AuthTokens{
		AccessToken:              accessToken.Token,
		ExpirationAccessDateTime: accessToken.ExpirationTime,
	}, nil
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
