package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	authdto "photocards-backend/internal/auth/dto"
	"photocards-backend/internal/auth/token"
	userdomain "photocards-backend/internal/user/domain"
	"photocards-backend/internal/user/repository"
	"photocards-backend/pkg/apperror"
)

// bcryptCost matches the cost the stored hashes were created with.
const bcryptCost = 10

// authUsecase implements AuthUsecase.
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*userdomain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &userdomain.User{
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: string(hash),
	}

	// The unique email index turns a duplicate registration into a
	// Conflict from the repository.
	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (string, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return "", apperror.Unauthorized("incorrect email or password")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", apperror.Unauthorized("incorrect email or password")
	}

	return u.tokens.Issue(user.ID.Hex())
}

func (u *authUsecase) ValidateToken(tokenString string) (string, error) {
	return u.tokens.Verify(tokenString)
}
