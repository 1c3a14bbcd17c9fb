package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName       = errors.New("invalid name")
	ErrReportEmpty       = errors.New("report is empty")
	ErrReportTooShort    = errors.New("report is too short")
	ErrAlreadySubmitted  = errors.New("report already submitted today")
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyRegistered = errors.New("user already registered")
	ErrCannotDeleteSelf  = errors.New("cannot delete yourself")
	ErrCannotDeleteAdmin = errors.New("cannot delete an admin")
	ErrNoReports         = errors.New("no reports for period")
)

// TooEarlyError is returned when a report is started before the shift ends.
type TooEarlyError struct {
	ShiftEnd string
}

func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("report allowed after %s", e.ShiftEnd)
}
