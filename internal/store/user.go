package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlCreateUser = `
INSERT INTO users (email, name, password_hash)
VALUES ($1, $2, $3)
RETURNING id, email, name, password_hash, is_admin, created_at, updated_at
`

// CreateUser creates a platform account
func (s *Store) CreateUser(ctx context.Context, email, name, passwordHash string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser, email, name, passwordHash)
	if err != nil {
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `
SELECT id, email, name, password_hash, is_admin, created_at, updated_at
FROM users
WHERE email = $1
`

// GetUserByEmail fetches a user by email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by email", err)
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

const sqlGetUserByID = `
SELECT id, email, name, password_hash, is_admin, created_at, updated_at
FROM users
WHERE id = $1
`

// GetUserByID fetches a user by primary key
func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by id", err)
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

const sqlGrantRole = `
INSERT INTO user_roles (user_id, league_id, team_id, role, granted_by)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, league_id, team_id, role, granted_by, granted_at, revoked_at
`

// GrantRole grants a league or team role to a user
func (s *Store) GrantRole(ctx context.Context, userID uuid.UUID, leagueID, teamID *uuid.UUID,
	role RoleKind, grantedBy *uuid.UUID) (UserRole, error) {
	var userRole UserRole
	err := s.db.GetContext(ctx, &userRole, sqlGrantRole, userID, leagueID, teamID, role, grantedBy)
	if err != nil {
		s.logger.Error(ctx, "failed to grant role", err)
		return UserRole{}, fmt.Errorf("failed to grant role: %w", err)
	}
	return userRole, nil
}

const sqlGetUserRoles = `
SELECT id, user_id, league_id, team_id, role, granted_by, granted_at, revoked_at
FROM user_roles
WHERE user_id = $1 AND revoked_at IS NULL
`

// GetUserRoles lists a user's unrevoked roles
func (s *Store) GetUserRoles(ctx context.Context, userID uuid.UUID) ([]UserRole, error) {
	var roles []UserRole
	err := s.db.SelectContext(ctx, &roles, sqlGetUserRoles, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get user roles", err)
		return nil, fmt.Errorf("failed to get user roles: %w", err)
	}
	return roles, nil
}

// A user can manage a team if they are its manager, an admin of its league,
// or a platform admin.
const sqlCanManageTeam = `
SELECT EXISTS (
    SELECT 1 FROM user_roles r
    WHERE r.user_id = $1 AND r.revoked_at IS NULL
      AND (r.team_id = $2
           OR r.league_id = (SELECT league_id FROM teams WHERE id = $2))
) OR EXISTS (
    SELECT 1 FROM users u WHERE u.id = $1 AND u.is_admin
)
`

// CanManageTeam reports whether a user is authorized to manage a team
func (s *Store) CanManageTeam(ctx context.Context, userID, teamID uuid.UUID) (bool, error) {
	var allowed bool
	err := s.db.GetContext(ctx, &allowed, sqlCanManageTeam, userID, teamID)
	if err != nil {
		s.logger.Error(ctx, "failed to check team management permission", err)
		return false, fmt.Errorf("failed to check team management permission: %w", err)
	}
	return allowed, nil
}

const sqlCanManageLeague = `
SELECT EXISTS (
    SELECT 1 FROM user_roles r
    WHERE r.user_id = $1 AND r.revoked_at IS NULL
      AND r.league_id = $2 AND r.role = 'league_admin'
) OR EXISTS (
    SELECT 1 FROM users u WHERE u.id = $1 AND u.is_admin
)
`

// CanManageLeague reports whether a user is an admin of the league or a
// platform admin
func (s *Store) CanManageLeague(ctx context.Context, userID, leagueID uuid.UUID) (bool, error) {
	var allowed bool
	err := s.db.GetContext(ctx, &allowed, sqlCanManageLeague, userID, leagueID)
	if err != nil {
		s.logger.Error(ctx, "failed to check league management permission", err)
		return false, fmt.Errorf("failed to check league management permission: %w", err)
	}
	return allowed, nil
}
