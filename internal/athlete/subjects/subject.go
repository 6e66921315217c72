package subjects

import (
	"errors"
	"strings"
)

var ErrSubjectNotFound = errors.New("subject not found")

type Gender string

const (
	GenderFemale  Gender = "female"
	GenderMale    Gender = "male"
	GenderUnknown Gender = "unknown"
)

// ParseGender accepts the codes used by the data entry forms (F/M, fr/en words).
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "female", "femme", "woman":
		return GenderFemale
	case "m", "h", "male", "homme", "man":
		return GenderMale
	default:
		return GenderUnknown
	}
}

type Subject struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
	Sport  string `json:"sport,omitempty"`
	Active bool   `json:"active"`
}
