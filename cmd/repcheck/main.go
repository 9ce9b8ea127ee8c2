// Command repcheck reports whether a URL is accessible to a set of
// user-agent identifiers according to a local robots.txt file.
//
// Usage:
//
//	repcheck [-json] [-v] <robots.txt file> <user_agents> <url>
//
// user_agents may be a single token or a comma-separated list. url must
// already be %-encoded per RFC 3986. Exit status is 0 when allowed, 1 when
// disallowed, 2 on bad input.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aldermoss/rep"
)

func main() {
	jsonOutput := flag.Bool("json", false, "print a JSON diagnostic snapshot instead of a sentence")
	verbose := flag.Bool("v", false, "log parse diagnostics to stderr")
	flag.Usage = usage
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "invalid number of arguments")
		usage()
		os.Exit(2)
	}

	filename, agentArg, url := args[0], args[1], args[2]
	agents := strings.Split(agentArg, ",")
	for _, agent := range agents {
		if !rep.IsValidUserAgentToObey(agent) {
			log.Warn().Str("agent", agent).Msg("user-agent contains characters outside [A-Za-z_-]")
		}
	}

	body, err := os.ReadFile(filename)
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("failed to read robots.txt")
		os.Exit(2)
	}

	log.Debug().
		Str("file", filename).
		Str("agents", agentArg).
		Str("url", url).
		Int("body_bytes", len(body)).
		Msg("parsing robots.txt")

	run := rep.Run(string(body), agents, url)

	log.Debug().
		Int("matching_line", run.MatchingLine).
		Bool("ever_seen_specific_agent", run.EverSeenSpecificAgent).
		Msg("decision made")

	if *jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(run); err != nil {
			log.Error().Err(err).Msg("failed to encode result")
			os.Exit(2)
		}
	} else {
		verdict := "DISALLOWED"
		if run.Allowed {
			verdict = "ALLOWED"
		}
		fmt.Printf("user-agent %q with URL %q: %s (line %d)\n", agentArg, url, verdict, run.MatchingLine)
		if len(body) == 0 {
			fmt.Println("notice: robots.txt is empty, so all user-agents are allowed")
		}
	}

	if run.Allowed {
		os.Exit(0)
	}
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, "repcheck: report whether a URL is allowed by a robots.txt file")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  repcheck [-json] [-v] <robots.txt file> <user_agents> <url>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintln(os.Stderr, "  repcheck robots.txt FooBot http://example.com/foo")
}
