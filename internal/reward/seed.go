package reward

import "github.com/appengine-ltd/reward-oracle/internal/calendar"

const seedRunes = 4

// Seed maps a name and date to the generator seed. Only the first four code
// points of name count; shorter names are padded with zero. All arithmetic
// wraps at 32 bits.
func Seed(name string, year, month, day int) uint32 {
	var c [seedRunes]uint32
	i := 0
	for _, r := range name {
		if i == seedRunes {
			break
		}
		c[i] = uint32(r)
		i++
	}
	return dateNumber(year, month, day) + 287234*c[0] + 71*c[1] + 97*c[2] + 1045*c[3]
}

// dateNumber is YYYYMMDD as a wrapping 32-bit value.
func dateNumber(year, month, day int) uint32 {
	return uint32(year)*10000 + uint32(month)*100 + uint32(day)
}

func seedFor(name string, d calendar.Date) uint32 {
	return Seed(name, d.Year, int(d.Month), d.Day)
}
