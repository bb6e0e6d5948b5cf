package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	newlinejson "github.com/geowurster/NewlineJSON"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Some color ANSI codes
var (
	reset      = "\033[0m"
	dimWhite   = "\033[37;2m"
	brightBlue = "\033[34;1m"
)

// runInsp steps through a file one record per keypress, pretty-printing each
// one.  When stdin carries the data, or stdout is not a terminal, it runs
// non-interactively and just dumps everything with a summary.
func runInsp(args []string) error {
	fs := flag.NewFlagSet("insp", flag.ExitOnError)
	codecName := fs.String("json", "json", "JSON codec to use")
	fs.Parse(args)

	codec, err := newlinejson.LookupCodec(*codecName)
	if err != nil {
		return err
	}
	name := argOrDash(fs.Args(), 0)
	src, err := newlinejson.OpenReader(name)
	if err != nil {
		return err
	}
	src.Codec = codec
	defer src.Close()

	colors := isatty.IsTerminal(os.Stdout.Fd())
	var stdout io.Writer = os.Stdout
	if colors {
		stdout = colorable.NewColorableStdout()
	}

	interactive := name != "-" && isatty.IsTerminal(os.Stdin.Fd()) && colors
	if interactive {
		fmt.Fprintf(stdout, "NewlineJSON %s Interactive Inspector\n", newlinejson.Version)
		fmt.Fprintln(stdout, "Press enter for the next record, 'a' for all remaining, 'q' to quit.")
	}

	keys := bufio.NewScanner(os.Stdin)
	dumpAll := !interactive
	for {
		if !dumpAll {
			fmt.Fprint(stdout, colorize("> ", brightBlue, colors))
			if !keys.Scan() {
				break
			}
			switch strings.TrimSpace(keys.Text()) {
			case "q", "quit":
				printSummary(stdout, src, colors)
				return nil
			case "a", "all":
				dumpAll = true
			}
		}
		rec, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := printRecord(stdout, src.LineNumber(), rec, colors); err != nil {
			return err
		}
	}
	printSummary(stdout, src, colors)
	return nil
}

func printRecord(w io.Writer, line int, rec newlinejson.Record, colors bool) error {
	// Display formatting only; the configured codec already decoded the line.
	pretty, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s %s\n", colorize(fmt.Sprintf("line %d:", line), dimWhite, colors), pretty)
	return err
}

func printSummary(w io.Writer, src *newlinejson.Reader, colors bool) {
	msg := fmt.Sprintf("%d lines, %d failures", src.LineNumber(), src.Failures())
	fmt.Fprintln(w, colorize(msg, dimWhite, colors))
}

func colorize(s, code string, colors bool) string {
	if !colors {
		return s
	}
	return code + s + reset
}
