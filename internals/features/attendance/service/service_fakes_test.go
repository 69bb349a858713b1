package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/datatypes"

	"presensiku_backend/internals/features/attendance/model"
	"presensiku_backend/internals/features/attendance/repository"
	usersvc "presensiku_backend/internals/features/users/service"
	"presensiku_backend/internals/helpers/dbtime"
)

// fakeStore meniru kontrak AttendanceStore di memori, termasuk
// constraint unik (user_id, date) dan urutan ListByUser.
type fakeStore struct {
	rows   []model.AttendanceModel
	nextID int
}

func (f *fakeStore) FindByUserAndDate(_ context.Context, userID int, day time.Time) (*model.AttendanceModel, error) {
	key := dbtime.StartOfDayUTC(day)
	for i := range f.rows {
		if f.rows[i].AttendanceUserID == userID && f.rows[i].Day().Equal(key) {
			rec := f.rows[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Insert(ctx context.Context, rec *model.AttendanceModel) error {
	existing, _ := f.FindByUserAndDate(ctx, rec.AttendanceUserID, time.Time(rec.AttendanceDate))
	if existing != nil {
		return repository.ErrDuplicateRecord
	}
	f.nextID++
	rec.AttendanceID = f.nextID
	now := time.Now().UTC()
	rec.AttendanceCreatedAt = now
	rec.AttendanceUpdatedAt = now
	f.rows = append(f.rows, *rec)
	return nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID int) ([]model.AttendanceModel, error) {
	var out []model.AttendanceModel
	for _, rec := range f.rows {
		if rec.AttendanceUserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].Day(), out[j].Day()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return out[i].AttendanceID > out[j].AttendanceID
	})
	return out, nil
}

func (f *fakeStore) ListByUserBetween(_ context.Context, userID int, start, end time.Time) ([]model.AttendanceModel, error) {
	lo, hi := dbtime.StartOfDayUTC(start), dbtime.StartOfDayUTC(end)
	var out []model.AttendanceModel
	for _, rec := range f.rows {
		d := rec.Day()
		if rec.AttendanceUserID == userID && !d.Before(lo) && !d.After(hi) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStore) ListBetween(_ context.Context, start, end time.Time) ([]model.AttendanceModel, error) {
	lo, hi := dbtime.StartOfDayUTC(start), dbtime.StartOfDayUTC(end)
	var out []model.AttendanceModel
	for _, rec := range f.rows {
		d := rec.Day()
		if !d.Before(lo) && !d.After(hi) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// seed menambahkan record langsung ke store, melewati ledger.
func (f *fakeStore) seed(userID int, year, month, day int, status string) {
	f.nextID++
	f.rows = append(f.rows, model.AttendanceModel{
		AttendanceID:     f.nextID,
		AttendanceUserID: userID,
		AttendanceDate:   datatypes.Date(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)),
		AttendanceStatus: status,
	})
}

// fakeDirectory meniru direktori user.
type fakeDirectory struct {
	users map[int]DirectoryUser
}

func (f *fakeDirectory) FindByID(_ context.Context, id int) (*DirectoryUser, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, usersvc.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeDirectory) MapByIDs(_ context.Context, ids []int) (map[int]DirectoryUser, error) {
	out := make(map[int]DirectoryUser, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func directoryWith(ids ...int) *fakeDirectory {
	users := make(map[int]DirectoryUser, len(ids))
	for _, id := range ids {
		users[id] = DirectoryUser{ID: id, Name: "User", Role: "STUDENT"}
	}
	return &fakeDirectory{users: users}
}

func strPtr(s string) *string { return &s }
