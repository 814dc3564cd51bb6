package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"time"

	"bookmyvenue/internal/domain/auth"
	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/pkg/clock"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/pkg/jwt"
	"bookmyvenue/internal/pkg/password"
	"bookmyvenue/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Role        string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, email, pw string) (*LoginResult, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, p user.ProfilePatch) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	reg, err := auth.NewRegistration(in.Name, in.Email, in.Password, in.PhoneNumber, in.Role)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(reg.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	u, err := user.NewUser(reg.Name(), reg.Email(), reg.PhoneNumber(), hash, reg.Role(), a.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, storeErr(err)
	}
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		return nil, err
	}

	account, err := a.uow.CommandReads().UserCredentialsByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// unknown email and wrong password look the same to the caller
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeErr(err)
	}

	if err := password.ComparePassword(account.PasswordHash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(account.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      account.ID,
		Role:        role,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}

// UpdateProfile edits the caller's own name, phone number and image.
func (a *authCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, p user.ProfilePatch) error {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserForUpdate(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := u.ApplyProfile(p, a.clock.Now()); err != nil {
			return err
		}
		if err := tx.Users().UpdateProfile(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})
	return storeErr(err)
}
