package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrLogExists        = errors.New("log for this date already exists")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange     = errors.New("range start is after range end")
	ErrNoData           = errors.New("no logs for the selected period")
	ErrMissingSetting   = errors.New("required setting is not set")
)
