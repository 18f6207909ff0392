package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/decexpr"
)

func main() {
	log.SetFlags(0)
	var (
		inname, confname string
		scale            int
		nl, echo, js, v  bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&confname, "config", "", "YAML configuration file")
	flag.IntVar(&scale, "scale", decexpr.DefaultScale, "fractional digits kept by calculations")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.BoolVar(&js, "json", false, "print one JSON object per expression")
	flag.BoolVar(&v, "v", false, "log failures")
	flag.Parse()

	cfg, err := loadConfig(confname)
	if err != nil {
		log.Fatal(err)
	}
	// Flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			cfg.Scale = scale
		case "echo":
			cfg.Echo = echo
		case "json":
			cfg.JSON = js
		}
	})
	if cfg.Scale < 0 {
		log.Fatalf("scale (%d) must not be negative", cfg.Scale)
	}
	if cfg.Scale > decexpr.MaxScale {
		log.Fatalf("scale (%d) must be at most %d", cfg.Scale, decexpr.MaxScale)
	}
	if cfg.Color != nil && !*cfg.Color {
		color.NoColor = true
	}

	var exprs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		in, err := readExprs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(exprs, in...)
	}
	exprs = append(exprs, flag.Args()...)

	rep := decexpr.Return
	if v {
		rep = logReporter(log.Default())
	}
	p := decexpr.New(decexpr.Scale(uint(cfg.Scale)), decexpr.ReportWith(rep))
	out := newPrinter(os.Stdout, cfg)
	failed := false
	for _, expr := range exprs {
		if !out.eval(p, expr) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// logReporter logs every failure before returning it.
func logReporter(l *log.Logger) decexpr.Reporter {
	return decexpr.ReporterFunc(func(code decexpr.Code, message string) error {
		l.Printf("%s: %s", code, message)
		return decexpr.Return.Report(code, message)
	})
}

// readExprs reads the expressions in r. If lines is true, each non-blank line
// is an expression; otherwise, the entire input is one expression.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		exprs = append(exprs, sc.Text())
	}
	return exprs, sc.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return bufio.NewReader(in), nil
	case inname == "-", std:
		return bufio.NewReader(os.Stdin), nil
	}
	return nil, nil
}
