package main

import (
	"fmt"
	"io"
	"os"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `usage: reward-oracle [-version] [-config path] [-log-level level] <command> [flags]

commands:
  check   -date YYYY-MM-DD -name NAME [-locale L]       does NAME win on the date
  names   -date YYYY-MM-DD [-locale L] [-workers N]     every 3 and 4 symbol winner
          [-near NAME] [-top N]                         rank winners close to NAME
  date    -date YYYY-MM-DD -name NAME [-step N]         next date NAME wins
          [-locale L] [-max-steps N]
  window  -date YYYY-MM-DD                              event window minutes
  config  [-save]                                       show (or write) the config`)
}
