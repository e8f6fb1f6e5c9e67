package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	domainErrors "go-scheduler-api/src/domain/errors"
	"go-scheduler-api/src/infrastructure/utils"

	"github.com/golang-jwt/jwt/v4"
)

const (
	Access = "access"
)

type AppToken struct {
	Token          string    `json:"token"`
	TokenType      string    `json:"type"`
	ExpirationTime time.Time `json:"expirationTime"`
}

type IJWTService interface {
	GenerateJWTToken(email string, tokenType string) (*AppToken, error)
	GetClaimsAndVerifyToken(tokenString string, tokenType string) (jwt.MapClaims, error)
}

type JWTConfig struct {
	AccessSecret string
	AccessTime   int64
}

type JWTService struct {
	config JWTConfig
	now    func() time.Time
}

// NewJWTService reads JWT_ACCESS_SECRET_KEY and JWT_ACCESS_TIME_MINUTE. Without
// a configured secret a random one is generated, so tokens do not survive a restart.
func NewJWTService() IJWTService {
	secret := utils.GetEnv("JWT_ACCESS_SECRET_KEY", "")
	if secret == "" {
		secret = randomSecret()
	}
	return NewJWTServiceWithConfig(JWTConfig{
		AccessSecret: secret,
		AccessTime:   int64(utils.GetEnvInt("JWT_ACCESS_TIME_MINUTE", 60)),
	})
}

func NewJWTServiceWithConfig(config JWTConfig) IJWTService {
	if config.AccessTime <= 0 {
		config.AccessTime = 60
	}
	return &JWTService{config: config, now: time.Now}
}

func (s *JWTService) GenerateJWTToken(email string, tokenType string) (*AppToken, error) {
	if tokenType != Access {
		return nil, errors.New("invalid token type")
	}

	tokenTimeUnix := time.Duration(s.config.AccessTime) * time.Minute
	expirationTime := s.now().Add(tokenTimeUnix)

	claims := jwt.MapClaims{
		"id":    email,
		"email": email,
		"type":  tokenType,
		"iat":   s.now().Unix(),
		"exp":   expirationTime.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(s.config.AccessSecret))
	if err != nil {
		return nil, err
	}

	return &AppToken{
		Token:          tokenStr,
		TokenType:      tokenType,
		ExpirationTime: expirationTime,
	}, nil
}

func (s *JWTService) GetClaimsAndVerifyToken(tokenString string, tokenType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainErrors.NewAppError(errors.New("unexpected signing method"), domainErrors.NotAuthenticated)
		}
		return []byte(s.config.AccessSecret), nil
	})
	if err != nil {
		return nil, domainErrors.NewAppError(err, domainErrors.NotAuthenticated)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainErrors.NewAppError(errors.New("invalid token"), domainErrors.NotAuthenticated)
	}
	if claims["type"] != tokenType {
		return nil, domainErrors.NewAppError(errors.New("invalid token type"), domainErrors.NotAuthenticated)
	}
	return claims, nil
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return time.Now().String()
	}
	return hex.EncodeToString(b)
}
