package reward

import (
	"context"
	"runtime"
	"sort"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/appengine-ltd/reward-oracle/internal/calendar"
)

// Alphabet is the symbol set of searchable names, in enumeration order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz_0123456789"

// nameLengths are the name lengths covered by the exhaustive search.
var nameLengths = []int{3, 4}

type Progress struct {
	Done  int
	Total int
}

// Searcher holds tuning for the search drivers. The zero value is usable:
// one worker per CPU, no step budget, no logging.
type Searcher struct {
	// Workers bounds concurrent tasks in Names. Zero or less means GOMAXPROCS.
	Workers int
	// MaxSteps bounds predicate evaluations in Dates. Zero means unbounded.
	MaxSteps int64
	Logger   *zerolog.Logger
	// Progress, if set, is called after each finished task, possibly from
	// several goroutines at once.
	Progress func(Progress)
}

// SearchNames returns every name of length 3 or 4 over Alphabet that wins on d,
// sorted ascending.
func SearchNames(d calendar.Date, loc Locale) []string {
	// Names only fails once ctx is done, and Background never is.
	names, _ := Searcher{}.Names(context.Background(), d, loc)
	return names
}

// SearchDate walks from start in steps of stepDays until name wins. ok is
// false when stepDays is zero, start is not a valid supported date, or the
// walk leaves the supported calendar.
func SearchDate(start calendar.Date, name string, stepDays int64, loc Locale) (calendar.Date, bool) {
	return Searcher{}.Dates(start, name, stepDays, loc)
}

func (s Searcher) logger() *zerolog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

func (s Searcher) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.GOMAXPROCS(0)
}

type nameTask struct {
	length int
	lead   byte
}

// Names is the exhaustive search. Work is split by (length, leading symbol);
// each task fills its own slot and the merged result is sorted once, so the
// output does not depend on scheduling. It fails only when ctx is done.
func (s Searcher) Names(ctx context.Context, d calendar.Date, loc Locale) ([]string, error) {
	log := s.logger()

	var tasks []nameTask
	total := 0
	for _, n := range nameLengths {
		for i := 0; i < len(Alphabet); i++ {
			tasks = append(tasks, nameTask{length: n, lead: Alphabet[i]})
		}
		total += pow(len(Alphabet), n)
	}
	log.Debug().
		Str("date", d.String()).
		Stringer("locale", loc).
		Int("workers", s.workers()).
		Int("candidates", total).
		Msg("name search started")

	dateNum := dateNumber(d.Year, int(d.Month), d.Day)
	results := make([][]string, len(tasks))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for i, task := range tasks {
		g.Go(func() error {
			found, err := scanLead(gctx, task, dateNum, loc)
			if err != nil {
				return err
			}
			results[i] = found
			n := done.Add(1)
			if s.Progress != nil {
				s.Progress(Progress{Done: int(n), Total: len(tasks)})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	size := 0
	for _, r := range results {
		size += len(r)
	}
	names := make([]string, 0, size)
	for _, r := range results {
		names = append(names, r...)
	}
	sort.Strings(names)

	log.Info().
		Str("date", d.String()).
		Stringer("locale", loc).
		Int("matches", len(names)).
		Msg("name search finished")
	return names, nil
}

// scanLead evaluates every name of task.length that starts with task.lead.
// The seed is built incrementally; it equals Seed(name, date) because every
// candidate is ASCII and at most four symbols long.
func scanLead(ctx context.Context, task nameTask, dateNum uint32, loc Locale) ([]string, error) {
	var found []string
	buf := make([]byte, task.length)
	buf[0] = task.lead
	base := dateNum + 287234*uint32(task.lead)

	for _, c1 := range []byte(Alphabet) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf[1] = c1
		s1 := base + 71*uint32(c1)
		for _, c2 := range []byte(Alphabet) {
			buf[2] = c2
			s2 := s1 + 97*uint32(c2)
			if task.length == 3 {
				if check(s2, loc) {
					found = append(found, string(buf))
				}
				continue
			}
			for _, c3 := range []byte(Alphabet) {
				buf[3] = c3
				if check(s2+1045*uint32(c3), loc) {
					found = append(found, string(buf))
				}
			}
		}
	}
	return found, nil
}

// Dates is the date walk. It is sequential by nature.
func (s Searcher) Dates(start calendar.Date, name string, stepDays int64, loc Locale) (calendar.Date, bool) {
	log := s.logger()
	if stepDays == 0 {
		log.Debug().Str("name", name).Msg("date search skipped: zero step")
		return calendar.Date{}, false
	}
	if !start.Valid() {
		log.Debug().Str("name", name).Str("start", start.String()).Msg("date search stopped: out of range")
		return calendar.Date{}, false
	}
	cur := start
	for steps := int64(1); ; steps++ {
		if Check(cur, name, loc) {
			log.Info().
				Str("name", name).
				Stringer("locale", loc).
				Str("date", cur.String()).
				Int64("steps", steps).
				Msg("winning date found")
			return cur, true
		}
		if s.MaxSteps > 0 && steps >= s.MaxSteps {
			log.Debug().Str("name", name).Int64("steps", steps).Msg("date search stopped: step budget")
			return calendar.Date{}, false
		}
		next, ok := cur.AddDays(stepDays)
		if !ok {
			log.Debug().Str("name", name).Str("last", cur.String()).Msg("date search stopped: out of range")
			return calendar.Date{}, false
		}
		cur = next
	}
}

func pow(b, n int) int {
	out := 1
	for i := 0; i < n; i++ {
		out *= b
	}
	return out
}
