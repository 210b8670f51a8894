package models

import (
	"errors"
	"fmt"
	"strings"
)

// CaseCategory enum
type CaseCategory string

const (
	CategoryJunkyYard         CaseCategory = "Junky Yard"
	CategoryAbandonedBuilding CaseCategory = "Abandoned Building"
	CategoryGraffiti          CaseCategory = "Graffiti"
	CategoryIllegalDumping    CaseCategory = "Illegal Dumping"
	CategoryPothole           CaseCategory = "Pothole"
	CategoryOther             CaseCategory = "Other"
)

var AllCategories = []CaseCategory{
	CategoryJunkyYard,
	CategoryAbandonedBuilding,
	CategoryGraffiti,
	CategoryIllegalDumping,
	CategoryPothole,
	CategoryOther,
}

var ErrInvalidCategory = errors.New("invalid category")

// ParseCategory matches a display name case-insensitively.
func ParseCategory(raw string) (CaseCategory, error) {
	trimmed := strings.TrimSpace(raw)
	for _, c := range AllCategories {
		if strings.EqualFold(trimmed, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
}

// Icon returns the marker icon name for the category.
func (c CaseCategory) Icon() string {
	switch c {
	case CategoryAbandonedBuilding:
		return "home"
	case CategoryJunkyYard:
		return "trash-2"
	case CategoryGraffiti:
		return "paint-bucket"
	case CategoryIllegalDumping:
		return "truck"
	case CategoryPothole:
		return "construction"
	default:
		return "map-pin"
	}
}

// DefaultPoints is the reward assigned to a newly reported case.
func (c CaseCategory) DefaultPoints() int {
	switch c {
	case CategoryAbandonedBuilding:
		return 30
	case CategoryJunkyYard:
		return 25
	case CategoryIllegalDumping:
		return 20
	case CategoryGraffiti:
		return 15
	default:
		return 10
	}
}

// RequiresImage reports whether a new report of this category needs a photo.
func (c CaseCategory) RequiresImage() bool {
	return c != CategoryOther
}
