package models

import (
	"errors"
	"fmt"
	"strings"
)

type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

var ErrInvalidPeriod = errors.New("invalid period")

func ParsePeriod(raw string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case Daily, Weekly, Monthly:
		return p, nil
	case "":
		return Daily, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, raw)
}

// Standing is one reporter's point total for a period.
type Standing struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}
