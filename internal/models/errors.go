package models

import "errors"

// Custom errors
var (
	ErrScheduleUnavailable = errors.New("schedule unavailable for date")
	ErrTeamNotFound        = errors.New("team not found in standings")
	ErrGoalieUnresolved    = errors.New("starting goalie could not be resolved")
	ErrNotFound            = errors.New("record not found")
	ErrInvalidDate         = errors.New("invalid date format, expected YYYY-MM-DD")
)
