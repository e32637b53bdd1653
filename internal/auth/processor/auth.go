package processor

import (
	"context"
	"errors"

	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type SignedUpUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// UserInfo is a user plus their active role grants.
type UserInfo struct {
	ID      uuid.UUID        `json:"id"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	IsAdmin bool             `json:"is_admin"`
	Roles   []store.UserRole `json:"roles"`
}

func (p *AuthProcessor) Signup(ctx context.Context, name, email, password string) (SignedUpUser, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	if _, err := p.store.GetUserByEmail(ctx, email); err == nil {
		return SignedUpUser{}, ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check if email exists", err)
		return SignedUpUser{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return SignedUpUser{}, err
	}

	user, err := p.store.CreateUser(ctx, email, name, string(hashedPassword))
	if err != nil {
		p.logger.Error(ctx, "failed to create user", err)
		return SignedUpUser{}, err
	}
	return SignedUpUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// Login verifies the password and returns a signed token. Unknown email and
// wrong password collapse into the same error so the endpoint does not leak
// which emails exist.
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := p.generateJWTToken(ctx, user)
	if err != nil {
		p.logger.Error(ctx, "failed to generate jwt token", err)
		return "", err
	}
	return token, nil
}

func (p *AuthProcessor) GetUserInfo(ctx context.Context, userID uuid.UUID) (UserInfo, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return UserInfo{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return UserInfo{}, err
	}

	roles, err := p.store.GetUserRoles(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to get user roles", err)
		return UserInfo{}, err
	}

	return UserInfo{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Roles:   roles,
	}, nil
}
