package projectile

import (
	"fmt"
	"strings"
)

// Method selects the update rule applied at every step.
type Method int

const (
	ExplicitEuler Method = iota
	// SemiImplicitEuler is the half-step "improved Euler" variant.
	SemiImplicitEuler
)

var methodNames = map[Method]string{
	ExplicitEuler:     "explicit_euler",
	SemiImplicitEuler: "improved_euler",
}

var methodAliases = map[string]Method{
	"explicit_euler":      ExplicitEuler,
	"explicit":            ExplicitEuler,
	"euler":               ExplicitEuler,
	"improved_euler":      SemiImplicitEuler,
	"improved":            SemiImplicitEuler,
	"semi_implicit_euler": SemiImplicitEuler,
	"semi_implicit":       SemiImplicitEuler,
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// Methods lists every supported method in declaration order.
func Methods() []Method {
	return []Method{ExplicitEuler, SemiImplicitEuler}
}

func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if m, ok := methodAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidConfiguration, s)
}

func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: unknown method %d", ErrInvalidConfiguration, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
