package reward

import (
	"fmt"
	"strings"
)

// Locale selects which win predicate applies.
type Locale int

const (
	Primary Locale = iota
	Secondary
)

func (l Locale) String() string {
	switch l {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("Locale(%d)", int(l))
	}
}

func ParseLocale(s string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "english", "en":
		return Primary, nil
	case "secondary", "non-english", "other":
		return Secondary, nil
	default:
		return Primary, fmt.Errorf("unknown locale %q (want primary or secondary)", s)
	}
}
