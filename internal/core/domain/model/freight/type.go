package freight

import "strings"

// Type is the canonical, upper-case freight type code.
type Type string

const (
	Express  Type = "EXP"
	Standard Type = "PAD"
	Economy  Type = "ECO"
)

var ErrFreightTypeIsRequired = NewInvalidFreightError("freight type must not be null or empty")

// ParseType normalises a caller supplied code. It does not check that a
// calculator exists for it; that is the Registry's job.
func ParseType(code string) (Type, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrFreightTypeIsRequired
	}
	return Type(strings.ToUpper(code)), nil
}

func (t Type) String() string {
	return string(t)
}

// Descriptor is the display information published for a freight type.
type Descriptor struct {
	Code        Type
	Name        string
	Description string
}
