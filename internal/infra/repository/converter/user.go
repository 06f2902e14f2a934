package converter

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/user"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
)

func UserToInfra(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsGuest:      u.IsGuest(),
	}
}

func UserToDomain(row sqlc.Users) *user.User {
	return user.ReconstructUser(
		row.ID,
		user.ReconstructEmail(row.Email),
		row.PasswordHash,
		user.Role(row.Role),
		row.IsGuest,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
