package service

import (
	"context"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
)

type AuthService interface {
	Register(ctx context.Context, req entity.RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, req entity.LoginRequest) (*entity.TokenResponse, error)
}
