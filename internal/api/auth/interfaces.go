package auth

import "context"

type AuthUsecase interface {
	Login(ctx context.Context, password string) error
}
