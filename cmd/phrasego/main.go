// Command phrasego indexes a text file and answers phrase queries on it.
//
// One-shot:
//
//	phrasego -file romeo.txt -pattern "Romeo"
//	phrasego -file romeo.txt -and "Romeo,Juliet" -max-distance 10
//	phrasego -file romeo.txt -query "romeo _AND_ (juliet _OR_ tybalt)"
//
// Without a one-shot flag the command reads boolean queries from stdin, one
// per line.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/hupe1980/phrasego"
	"github.com/hupe1980/phrasego/postings"
	"github.com/hupe1980/phrasego/prom"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		filePath   = flag.String("file", "", "text file to index (overrides config)")
		pattern    = flag.String("pattern", "", "single pattern to locate")
		andList    = flag.String("and", "", "comma-separated patterns for a proximity AND search")
		orList     = flag.String("or", "", "comma-separated patterns for a proximity OR search")
		queryStr   = flag.String("query", "", "boolean query (_AND_/_OR_/_NOT_) to run once")
		md         = flag.Int("max-distance", -1, "proximity tolerance (overrides config)")
	)
	flag.Parse()

	if err := run(*configPath, *filePath, *pattern, *andList, *orList, *queryStr, *md); err != nil {
		fmt.Fprintln(os.Stderr, "phrasego:", err)
		os.Exit(1)
	}
}

func run(configPath, filePath, pattern, andList, orList, queryStr string, md int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if filePath != "" {
		cfg.Input.Path = filePath
	}
	if md >= 0 {
		cfg.Search.MaxDistance = md
	}
	if cfg.Input.Path == "" {
		return fmt.Errorf("no input file: pass -file or set input.path in the config")
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}

	var metrics phrasego.MetricsCollector = phrasego.NoopMetricsCollector{}
	if cfg.Metrics.Enabled {
		metrics = prom.New(nil)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", prom.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	text, err := readInput(cfg.Input)
	if err != nil {
		return err
	}

	e := phrasego.FromString(text).
		MaxDistance(cfg.Search.MaxDistance).
		Logger(logger).
		Metrics(metrics).
		Build()

	ctx := context.Background()
	switch {
	case pattern != "":
		positions, err := e.SearchPattern(ctx, pattern)
		if err != nil {
			return err
		}
		return report(positions)
	case andList != "":
		positions, err := e.Search(splitHead(andList)).And(splitTail(andList)...).Execute(ctx)
		if err != nil {
			return err
		}
		return report(positions)
	case orList != "":
		positions, err := e.Search(splitHead(orList)).Or(splitTail(orList)...).Execute(ctx)
		if err != nil {
			return err
		}
		return report(positions)
	case queryStr != "":
		positions, err := e.SearchQuery(ctx, queryStr)
		if err != nil {
			return err
		}
		return report(positions)
	}

	return repl(ctx, e)
}

// repl reads boolean queries from stdin, one per line, until EOF.
func repl(ctx context.Context, e *phrasego.Engine) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("indexed %d code units; enter queries (_AND_/_OR_/_NOT_), ctrl-d to quit\n", e.Len())
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		positions, err := e.SearchQuery(ctx, line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if err := report(positions); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func report(positions postings.List) error {
	fmt.Printf("%d match(es)\n", len(positions))
	for _, p := range positions {
		fmt.Println(p)
	}
	return nil
}

func newLogger(cfg LoggingConfig) (*phrasego.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	switch cfg.Format {
	case "json":
		return phrasego.NewJSONLogger(level), nil
	case "", "text":
		return phrasego.NewTextLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", cfg.Format)
	}
}

// readInput loads and decodes the input file into a UTF-8 string.
func readInput(cfg InputConfig) (string, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var enc encoding.Encoding
	switch strings.ToLower(cfg.Encoding) {
	case "", "utf-8", "utf8":
		enc = unicode.UTF8
	case "utf-16", "utf16":
		enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "gb18030":
		enc = simplifiedchinese.GB18030
	default:
		return "", fmt.Errorf("unsupported encoding %q", cfg.Encoding)
	}

	data, err := io.ReadAll(transform.NewReader(f, enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", cfg.Path, err)
	}
	return string(data), nil
}

func splitHead(list string) string {
	return strings.Split(list, ",")[0]
}

func splitTail(list string) []string {
	parts := strings.Split(list, ",")
	return parts[1:]
}
