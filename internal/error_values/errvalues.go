package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
)

var (
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrStatsNotFound = errors.New("user stats don't exist")
)

var (
	ErrBlockNotFound  = errors.New("capacity block doesn't exist")
	ErrOwnerNotFound  = errors.New("owner of the record doesn't exist")
	ErrWrongOwner     = errors.New("record belongs to another user")
	ErrInvalidRequest = errors.New("invalid request")
)

var (
	ErrProjectNotFound = errors.New("project doesn't exist")
	ErrProjectExists   = errors.New("project with such name already exists")
)
