package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fzft/go-chaintable/db"
	"github.com/fzft/go-chaintable/deps/linenoise"
	"github.com/fzft/go-chaintable/log"
	"github.com/fzft/go-chaintable/poi"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

var (
	CliHisFileEnv     = "CHAINTABLE_HISTFILE"
	CliHisFileDefault = ".chaintable_history"
	CliPrompt         = "chaintable> "
)

var ErrQuit = errors.New("quit")

// Cli drives a string set, and optionally a restaurant lookup, from typed
// commands.
type Cli struct {
	set    *db.Set[db.String]
	lookup *poi.Lookup
	out    io.Writer
}

// NewCli creates a shell over set. lookup may be nil, which disables NEAR.
func NewCli(set *db.Set[db.String], lookup *poi.Lookup, out io.Writer) *Cli {
	return &Cli{set: set, lookup: lookup, out: out}
}

// Repl reads commands from in until QUIT or end of input. A terminal gets
// line editing and a history file.
func (cli *Cli) Repl(in *os.File) error {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return cli.Run(in)
	}

	line := linenoise.New()
	defer line.Close()

	historyFile := getDotfilePath(CliHisFileEnv, CliHisFileDefault)
	if historyFile != "" {
		if err := line.HistoryLoad(historyFile); err != nil && !os.IsNotExist(err) {
			log.Logger.Warn("history load failed", zap.String("file", historyFile), zap.Error(err))
		}
	}

	for {
		input, err := line.Prompt(CliPrompt)
		if err != nil {
			break // ctrl-c, ctrl-d
		}
		argv := strings.Fields(input)
		if len(argv) == 0 {
			continue
		}
		line.AppendHistory(input)

		if strings.EqualFold(argv[0], "clear") {
			line.ClearScreen()
			continue
		}
		if err := cli.Exec(argv); err != nil {
			if errors.Is(err, ErrQuit) {
				break
			}
			fmt.Fprintf(cli.out, "(error) %v\n", err)
		}
	}

	if historyFile != "" {
		if err := line.HistorySave(historyFile); err != nil {
			log.Logger.Warn("history save failed", zap.String("file", historyFile), zap.Error(err))
		}
	}
	return nil
}

// Run executes one command per line of r, without line editing.
func (cli *Cli) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		argv := strings.Fields(sc.Text())
		if len(argv) == 0 {
			continue
		}
		if err := cli.Exec(argv); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			fmt.Fprintf(cli.out, "(error) %v\n", err)
		}
	}
	return sc.Err()
}

// Exec runs one command and writes its reply. It returns ErrQuit for QUIT
// and EXIT.
func (cli *Cli) Exec(argv []string) error {
	name := strings.ToLower(argv[0])
	args := argv[1:]

	switch name {
	case "quit", "exit":
		return ErrQuit
	case "help":
		fmt.Fprint(cli.out, helpText)
	case "add":
		if len(args) == 0 {
			return wrongArgs(name)
		}
		added := 0
		for _, key := range args {
			if cli.set.Add(db.String(key)) {
				added++
			}
		}
		fmt.Fprintf(cli.out, "(integer) %d\n", added)
	case "del":
		if len(args) == 0 {
			return wrongArgs(name)
		}
		// report the first missing key but still remove the rest
		var missing error
		for _, key := range args {
			if err := cli.set.Table().Remove(db.String(key)); err != nil && missing == nil {
				missing = fmt.Errorf("%s: %w", key, err)
			}
		}
		if missing != nil {
			return missing
		}
		fmt.Fprintln(cli.out, "OK")
	case "has":
		if len(args) != 1 {
			return wrongArgs(name)
		}
		fmt.Fprintf(cli.out, "(integer) %d\n", boolInt(cli.set.Contains(db.String(args[0]))))
	case "size":
		fmt.Fprintf(cli.out, "(integer) %d\n", cli.set.Len())
	case "buckets":
		fmt.Fprintf(cli.out, "(integer) %d\n", cli.set.Table().BucketCount())
	case "scan":
		for i, key := range cli.set.Members() {
			fmt.Fprintf(cli.out, "%d) %q\n", i+1, string(key))
		}
	case "stats":
		st := cli.set.Table().Stats()
		fmt.Fprintf(cli.out, "items:%d buckets:%d grows:%d shrinks:%d rehashed:%d\n",
			cli.set.Len(), cli.set.Table().BucketCount(), st.Grows, st.Shrinks, st.Rehashed)
	case "near":
		return cli.near(args)
	default:
		return fmt.Errorf("unknown command '%s'", argv[0])
	}
	return nil
}

// near handles NEAR x y [stars] [qsort|isort|both] [limit]
func (cli *Cli) near(args []string) error {
	if cli.lookup == nil {
		return errors.New("no restaurant database loaded")
	}
	if len(args) < 2 || len(args) > 5 {
		return wrongArgs("near")
	}

	var (
		q   = poi.Query{MinStars: 1}
		err error
	)
	if q.At.X, err = strconv.Atoi(args[0]); err != nil {
		return fmt.Errorf("invalid x: %w", err)
	}
	if q.At.Y, err = strconv.Atoi(args[1]); err != nil {
		return fmt.Errorf("invalid y: %w", err)
	}
	if len(args) > 2 {
		if q.MinStars, err = strconv.Atoi(args[2]); err != nil || q.MinStars < 1 || q.MinStars > 5 {
			return fmt.Errorf("stars must be 1..5, got %q", args[2])
		}
	}
	if len(args) > 3 {
		if q.Algorithm, err = poi.ParseSortAlgorithm(args[3]); err != nil {
			return err
		}
	}
	if len(args) > 4 {
		if q.Limit, err = strconv.Atoi(args[4]); err != nil || q.Limit < 0 {
			return fmt.Errorf("invalid limit %q", args[4])
		}
	}

	rs, err := cli.lookup.Nearby(q)
	if err != nil {
		return err
	}
	for i, r := range rs {
		rest, err := cli.lookup.Get(r.Index)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "%d) %q dist=%d stars=%d\n", i+1, rest.Name, r.Dist, poi.Stars(rest.Rating))
	}
	return nil
}

func wrongArgs(name string) error {
	return fmt.Errorf("wrong number of arguments for '%s' command", name)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func getDotfilePath(envOverride, dotFilename string) string {
	var dotPath string

	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		dotPath = path
	} else {
		home := os.Getenv("HOME")
		if home != "" {
			dotPath = fmt.Sprintf("%s/%s", home, dotFilename)
		}
	}
	return dotPath
}

const helpText = `ADD key [key ...]       insert keys, replies with how many were new
DEL key [key ...]       remove keys, every key must exist
HAS key                 1 if key is present
SIZE                    number of keys
BUCKETS                 current bucket count
SCAN                    list keys in table order
STATS                   resize counters
NEAR x y [stars] [qsort|isort|both] [limit]
                        restaurants closest to map point (x, y)
CLEAR                   clear the screen
QUIT                    leave
`
