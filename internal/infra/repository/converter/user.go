package converter

import (
	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().Value(),
		PhoneNumber:  pgconv.StringToPgtype(u.PhoneNumber().Value()),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func UserToUpdateProfileParams(u *user.User) sqlc.UpdateUserProfileParams {
	return sqlc.UpdateUserProfileParams{
		ID:          u.ID(),
		Name:        u.Name(),
		PhoneNumber: pgconv.StringToPgtype(u.PhoneNumber().Value()),
		Image:       pgconv.StringToPgtype(u.Image()),
		UpdatedAt:   pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

// UserFromRow revalidates email, phone and role so a corrupted row never becomes an entity.
func UserFromRow(row sqlc.User) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s email", row.ID)
	}
	phone, err := user.NewPhoneNumber(pgconv.StringFromPgtype(row.PhoneNumber))
	if err != nil {
		return nil, errs.Wrapf(err, "user %s phone number", row.ID)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s role", row.ID)
	}

	return user.ReconstructUser(
		row.ID,
		row.Name,
		email,
		phone,
		row.PasswordHash,
		role,
		pgconv.StringFromPgtype(row.Image),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
