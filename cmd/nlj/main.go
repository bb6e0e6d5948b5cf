package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	newlinejson "github.com/geowurster/NewlineJSON"
)

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling at the bottom of main).
	signal.Ignore(syscall.SIGPIPE)

	flag.Usage = printUsage
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(newlinejson.Version)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "csv2nlj":
		err = runCSV2NLJ(args[1:])
	case "nlj2csv":
		err = runNLJ2CSV(args[1:])
	case "insp":
		err = runInsp(args[1:])
	default:
		fatalError("unknown command %q, expected csv2nlj, nlj2csv or insp", args[0])
	}
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return
		}
		fatalError("%s: %s", args[0], err)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: nlj COMMAND [OPTIONS] [INFILE [OUTFILE]]

Common simple ETL commands for newline delimited JSON.

Commands:
  csv2nlj   convert a CSV with a header row to newline JSON objects
  nlj2csv   convert homogeneous newline JSON objects to a CSV
  insp      step through a file record by record

INFILE and OUTFILE default to '-' (stdin and stdout).

Every command accepts -json NAME to pick the JSON codec (%s).
`, strings.Join(newlinejson.CodecNames(), ", "))
}

func runCSV2NLJ(args []string) error {
	fs := flag.NewFlagSet("csv2nlj", flag.ExitOnError)
	codecName := fs.String("json", "json", "JSON codec to use")
	fs.Parse(args)

	codec, err := newlinejson.LookupCodec(*codecName)
	if err != nil {
		return err
	}
	in, closeIn, err := openInput(fs.Args(), 0)
	if err != nil {
		return err
	}
	defer closeIn()

	dst, err := newlinejson.OpenWriter(argOrDash(fs.Args(), 1))
	if err != nil {
		return err
	}
	dst.Codec = codec
	defer dst.Close()

	if err := newlinejson.FromCSV(in, dst); err != nil {
		return err
	}
	return dst.Close()
}

func runNLJ2CSV(args []string) error {
	fs := flag.NewFlagSet("nlj2csv", flag.ExitOnError)
	codecName := fs.String("json", "json", "JSON codec to use")
	noHeader := fs.Bool("no-header", false, "do not write the header row")
	skipFailures := fs.Bool("skip-failures", false, "project nonconforming records instead of failing")
	fs.Parse(args)

	codec, err := newlinejson.LookupCodec(*codecName)
	if err != nil {
		return err
	}
	src, err := newlinejson.OpenReader(argOrDash(fs.Args(), 0))
	if err != nil {
		return err
	}
	src.Codec = codec
	defer src.Close()

	out, closeOut, err := openOutput(fs.Args(), 1)
	if err != nil {
		return err
	}
	defer closeOut()

	return newlinejson.ToCSV(src, out, !*noHeader, *skipFailures)
}

// argOrDash returns the i-th positional argument, defaulting to "-" for
// stdin or stdout.
func argOrDash(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return "-"
}

func openInput(args []string, i int) (io.Reader, func(), error) {
	name := argOrDash(args, i)
	if name == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(args []string, i int) (io.Writer, func(), error) {
	name := argOrDash(args, i)
	if name == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}
