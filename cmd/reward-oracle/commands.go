package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/reward-oracle/internal/calendar"
	"github.com/appengine-ltd/reward-oracle/internal/config"
	"github.com/appengine-ltd/reward-oracle/internal/eventwindow"
	"github.com/appengine-ltd/reward-oracle/internal/logging"
	"github.com/appengine-ltd/reward-oracle/internal/reward"
)

type env struct {
	cfg     config.Config
	cfgPath string
	log     zerolog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

type command func(e *env, args []string) error

var commands = map[string]command{
	"check":  runCheck,
	"names":  runNames,
	"date":   runDate,
	"window": runWindow,
	"config": runConfig,
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		showVersion bool
		cfgPath     string
		logLevel    string
	)
	fs := flag.NewFlagSet("reward-oracle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.StringVar(&cfgPath, "config", "", "config file (default: user config dir)")
	fs.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, ...)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintf(stdout, "reward-oracle %s (%s) %s\n", version, commit, date)
		return 0
	}

	rest := fs.Args()
	if len(rest) == 0 {
		usage(stderr)
		return 2
	}
	name := strings.ToLower(rest[0])
	cmd, ok := commands[name]
	if !ok {
		msg := fmt.Sprintf("unknown command %q", rest[0])
		if s := suggestCommand(name); s != "" {
			msg += fmt.Sprintf(", did you mean %q?", s)
		}
		fmt.Fprintln(stderr, msg)
		return 2
	}

	if cfgPath == "" {
		if p, err := config.Path(); err == nil {
			cfgPath = p
		}
	}
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(stderr, "load config %s: %v\n", cfgPath, err)
			return 1
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	log, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	e := &env{cfg: cfg, cfgPath: cfgPath, log: log, stdout: stdout, stderr: stderr}
	if err := cmd(e, rest[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// suggestCommand returns the known command closest to name, or "" when none
// is within two edits.
func suggestCommand(name string) string {
	known := make([]string, 0, len(commands))
	for k := range commands {
		known = append(known, k)
	}
	sort.Strings(known)
	best, bestDist := "", 3
	for _, k := range known {
		if d := levenshtein.ComputeDistance(name, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

func (e *env) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func (e *env) locale(raw string) (reward.Locale, error) {
	if strings.TrimSpace(raw) == "" {
		return e.cfg.ParsedLocale(), nil
	}
	return reward.ParseLocale(raw)
}

func requireDate(raw string) (calendar.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return calendar.Date{}, errors.New("-date is required")
	}
	return calendar.Parse(raw)
}

func requireName(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("-name is required")
	}
	return raw, nil
}

func runCheck(e *env, args []string) error {
	fs := e.flagSet("check")
	dateRaw := fs.String("date", "", "date as YYYY-MM-DD")
	nameRaw := fs.String("name", "", "account name")
	locRaw := fs.String("locale", "", "primary or secondary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	d, err := requireDate(*dateRaw)
	if err != nil {
		return err
	}
	name, err := requireName(*nameRaw)
	if err != nil {
		return err
	}
	loc, err := e.locale(*locRaw)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, reward.Check(d, name, loc))
	return nil
}

func runNames(e *env, args []string) error {
	fs := e.flagSet("names")
	dateRaw := fs.String("date", "", "date as YYYY-MM-DD")
	locRaw := fs.String("locale", "", "primary or secondary")
	workers := fs.Int("workers", e.cfg.Workers, "concurrent search tasks (0 = one per CPU)")
	near := fs.String("near", "", "rank winners by closeness to this name")
	top := fs.Int("top", 10, "how many ranked winners to print with -near")
	if err := fs.Parse(args); err != nil {
		return err
	}
	d, err := requireDate(*dateRaw)
	if err != nil {
		return err
	}
	loc, err := e.locale(*locRaw)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	s := reward.Searcher{Workers: *workers, Logger: &e.log}
	names, err := s.Names(ctx, d, loc)
	if err != nil {
		return fmt.Errorf("search names: %w", err)
	}

	if *near == "" {
		for _, n := range names {
			fmt.Fprintln(e.stdout, n)
		}
		return nil
	}
	ranked := reward.Nearest(*near, names, -1)
	if *top > 0 && len(ranked) > *top {
		ranked = ranked[:*top]
	}
	for _, r := range ranked {
		fmt.Fprintf(e.stdout, "%s\t%d\n", r.Name, r.Distance)
	}
	return nil
}

func runDate(e *env, args []string) error {
	fs := e.flagSet("date")
	dateRaw := fs.String("date", "", "start date as YYYY-MM-DD")
	nameRaw := fs.String("name", "", "account name")
	step := fs.Int64("step", 1, "days per step, negative walks backwards")
	locRaw := fs.String("locale", "", "primary or secondary")
	maxSteps := fs.Int64("max-steps", e.cfg.MaxSteps, "stop after this many dates (0 = unbounded)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	start, err := requireDate(*dateRaw)
	if err != nil {
		return err
	}
	name, err := requireName(*nameRaw)
	if err != nil {
		return err
	}
	loc, err := e.locale(*locRaw)
	if err != nil {
		return err
	}
	if *maxSteps < 0 {
		return fmt.Errorf("-max-steps must be >= 0, got %d", *maxSteps)
	}

	s := reward.Searcher{MaxSteps: *maxSteps, Logger: &e.log}
	found, ok := s.Dates(start, name, *step, loc)
	if !ok {
		fmt.Fprintln(e.stdout, "not found")
		return nil
	}
	fmt.Fprintln(e.stdout, found)
	return nil
}

func runWindow(e *env, args []string) error {
	fs := e.flagSet("window")
	dateRaw := fs.String("date", "", "date as YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	d, err := requireDate(*dateRaw)
	if err != nil {
		return err
	}
	start := eventwindow.StartMinute(d)
	if start == eventwindow.SkipMinute {
		fmt.Fprintf(e.stdout, "%s skip day\n", d)
		return nil
	}
	minutes := eventwindow.Minutes(d)
	parts := make([]string, len(minutes))
	for i, m := range minutes {
		parts[i] = fmt.Sprintf("%d", m)
	}
	fmt.Fprintf(e.stdout, "%s start=%d minutes=%s\n", d, start, strings.Join(parts, ","))
	return nil
}

func runConfig(e *env, args []string) error {
	fs := e.flagSet("config")
	save := fs.Bool("save", false, "write the effective config to the config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *save {
		if e.cfgPath == "" {
			return errors.New("no config path available; pass -config")
		}
		if err := config.Save(e.cfgPath, e.cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		e.log.Info().Str("path", e.cfgPath).Msg("config saved")
	}
	blob, err := json.MarshalIndent(e.cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, string(blob))
	return nil
}
