package report

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid report period")
	ErrEmptyRange    = errors.New("start date must not be after end date")
)
