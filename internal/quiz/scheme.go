package quiz

import (
	"fmt"
	"strings"
)

// Scheme is the grading policy applied to wrong answers. It is fixed when
// the quiz is created.
type Scheme int

const (
	// SchemeBinary awards full points or nothing.
	SchemeBinary Scheme = iota
	// SchemeNegative subtracts a fraction of the points for wrong multiple-choice answers.
	SchemeNegative
	// SchemePartial awards a fraction of the points for wrong open answers.
	SchemePartial
)

var schemeNames = map[Scheme]string{
	SchemeBinary:   "binary",
	SchemeNegative: "negative",
	SchemePartial:  "partial",
}

// schemeAliases includes the labels shown by the original quiz configuration form.
var schemeAliases = map[string]Scheme{
	"binary":                    SchemeBinary,
	"binaire":                   SchemeBinary,
	"binaire (0 ou max points)": SchemeBinary,
	"negative":                  SchemeNegative,
	"points négatifs":           SchemeNegative,
	"points negatifs":           SchemeNegative,
	"partial":                   SchemePartial,
	"partiel":                   SchemePartial,
}

// ParseScheme resolves a scheme from its name or one of its display labels.
func ParseScheme(s string) (Scheme, error) {
	if sc, ok := schemeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return sc, nil
	}
	return SchemeBinary, fmt.Errorf("%w: %q", ErrUnknownScheme, s)
}

// SchemeNames returns the canonical scheme names in declaration order.
func SchemeNames() []string {
	return []string{"binary", "negative", "partial"}
}

func (s Scheme) String() string {
	if n, ok := schemeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("scheme(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	n, ok := schemeNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, int(s))
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	sc, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = sc
	return nil
}
