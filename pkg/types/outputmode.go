package types

import "fmt"

// OutputMode selects the shape of a list result.
type OutputMode string

const (
	// ModeNames returns only the entity names.
	ModeNames OutputMode = "names"
	// ModeShort returns flat maps with declared extra fields dropped and
	// timestamps rendered as display strings.
	ModeShort OutputMode = "short"
	// ModeDetails returns the full typed objects.
	ModeDetails OutputMode = "details"
	// ModeDict returns flat maps with every field.
	ModeDict OutputMode = "dict"
)

// ShortTimeLayout is the display format used for timestamps in ModeShort.
const ShortTimeLayout = "2006-01-02 15:04:05"

// ParseOutputMode converts a string into an OutputMode.
func ParseOutputMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case ModeNames, ModeShort, ModeDetails, ModeDict:
		return OutputMode(s), nil
	case "":
		return ModeDetails, nil
	default:
		return "", fmt.Errorf("%w: unknown output mode %q", ErrValidation, s)
	}
}
