package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, name, email, phone_number, password_hash, role, image, created_at, updated_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PhoneNumber,
		&u.PasswordHash,
		&u.Role,
		&u.Image,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

const createUser = `
INSERT INTO users (id, name, email, phone_number, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + userColumns

type CreateUserParams struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PhoneNumber  pgtype.Text
	PasswordHash string
	Role         string
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (User, error) {
	row := db.QueryRow(ctx, createUser,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.PhoneNumber,
		arg.PasswordHash,
		arg.Role,
		arg.CreatedAt,
	)
	return scanUser(row)
}

const getUserByEmail = `
SELECT ` + userColumns + `
FROM users
WHERE lower(email) = lower($1)
`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const getUserByID = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const listUsers = `
SELECT ` + userColumns + `
FROM users
ORDER BY created_at DESC, id
`

func (q *Queries) ListUsers(ctx context.Context, db DBTX) ([]User, error) {
	rows, err := db.Query(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}

const getUserByIDForUpdate = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetUserByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByIDForUpdate, id))
}

const updateUserProfile = `
UPDATE users
SET name = $2, phone_number = $3, image = $4, updated_at = $5
WHERE id = $1
RETURNING ` + userColumns

type UpdateUserProfileParams struct {
	ID          uuid.UUID
	Name        string
	PhoneNumber pgtype.Text
	Image       pgtype.Text
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) UpdateUserProfile(ctx context.Context, db DBTX, arg UpdateUserProfileParams) (User, error) {
	row := db.QueryRow(ctx, updateUserProfile,
		arg.ID,
		arg.Name,
		arg.PhoneNumber,
		arg.Image,
		arg.UpdatedAt,
	)
	return scanUser(row)
}
