package auth

import (
	"github.com/LadsThatCode/Pinpoint-BE/config"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository/util"
)

type AuthService struct {
	userRepository repository.UserRepository
	signingKey     []byte
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *AuthService {
	return &AuthService{
		userRepository: repo.UserRepo,
		signingKey:     []byte(config.JwtSecret),
	}
}
