// file: internals/features/attendance/service/directory.go
package service

import (
	"context"

	userModel "presensiku_backend/internals/features/users/model"
	usersvc "presensiku_backend/internals/features/users/service"
)

// DirectoryUser adalah potongan atribut user yang dibutuhkan modul
// attendance (identitas + atribut grouping).
type DirectoryUser struct {
	ID       int
	Name     string
	Role     string
	Class    *string
	Position *string
}

// UserDirectory kapabilitas lookup user yang dikonsumsi ledger &
// analyzer. Error not-found dari direktori diteruskan apa adanya.
type UserDirectory interface {
	FindByID(ctx context.Context, id int) (*DirectoryUser, error)
	MapByIDs(ctx context.Context, ids []int) (map[int]DirectoryUser, error)
}

type userDirectory struct {
	users *usersvc.UserService
}

func NewUserDirectory(users *usersvc.UserService) UserDirectory {
	return &userDirectory{users: users}
}

func (d *userDirectory) FindByID(ctx context.Context, id int) (*DirectoryUser, error) {
	u, err := d.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	du := fromUserModel(*u)
	return &du, nil
}

func (d *userDirectory) MapByIDs(ctx context.Context, ids []int) (map[int]DirectoryUser, error) {
	rows, err := d.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[int]DirectoryUser, len(rows))
	for _, u := range rows {
		out[u.UserID] = fromUserModel(u)
	}
	return out, nil
}

func fromUserModel(u userModel.UserModel) DirectoryUser {
	return DirectoryUser{
		ID:       u.UserID,
		Name:     u.UserName,
		Role:     u.UserRole,
		Class:    u.UserClass,
		Position: u.UserPosition,
	}
}
