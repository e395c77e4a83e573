// Package reward predicts whether a name is granted the daily reward and
// searches names and dates for wins.
package reward

import (
	"github.com/appengine-ltd/reward-oracle/internal/calendar"
	"github.com/appengine-ltd/reward-oracle/internal/lagrand"
)

// Check reports whether name wins on d under the given locale.
func Check(d calendar.Date, name string, loc Locale) bool {
	return check(seedFor(name, d), loc)
}

func check(seed uint32, loc Locale) bool {
	var e lagrand.Engine
	e.Seed(seed)
	if loc == Secondary {
		return secondaryWin(&e)
	}
	return primaryWin(&e)
}

// primaryWin is deliberately non-exhaustive: the losing branches consume no
// further draws. The second mod 3 test takes a fresh draw.
func primaryWin(e *lagrand.Engine) bool {
	if e.Draw()%3 == 2 {
		if e.Draw()%2 != 1 {
			return false
		}
		e.Skip(4)
		c := e.Draw() % 23
		return c > 1 && c < 5 && e.Draw()%20 == 11
	}
	if e.Draw()%3 == 0 {
		e.Skip(6)
		return e.Draw()%20 == 11
	}
	return false
}

func secondaryWin(e *lagrand.Engine) bool {
	return e.Draw()%920 == 0
}
