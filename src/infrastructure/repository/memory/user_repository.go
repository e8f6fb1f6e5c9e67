package memory

import (
	"fmt"
	"strings"

	domainErrors "go-scheduler-api/src/domain/errors"
	domainUser "go-scheduler-api/src/domain/user"
	logger "go-scheduler-api/src/infrastructure/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserRepositoryInterface interface {
	GetByEmail(email string) (*domainUser.User, error)
}

// UserRepository holds the seeded demo accounts keyed by lower-cased email.
type UserRepository struct {
	users  map[string]domainUser.User
	Logger *logger.Logger
}

// NewUserRepository hashes every seed password before keeping it.
func NewUserRepository(seeds []UserSeed, loggerInstance *logger.Logger) (UserRepositoryInterface, error) {
	users := make(map[string]domainUser.User, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			loggerInstance.Error("Error hashing seed password", zap.Error(err), zap.String("email", s.Email))
			return nil, err
		}
		key := normalizeEmail(s.Email)
		users[key] = domainUser.User{
			Email:        key,
			Name:         s.Name,
			HashPassword: string(hash),
		}
	}
	loggerInstance.Info("Seeded users", zap.Int("count", len(users)))
	return &UserRepository{users: users, Logger: loggerInstance}, nil
}

func (r *UserRepository) GetByEmail(email string) (*domainUser.User, error) {
	u, ok := r.users[normalizeEmail(email)]
	if !ok {
		return nil, domainErrors.NewAppError(fmt.Errorf("user %q not found", email), domainErrors.NotFound)
	}
	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
