// Command tempconv converts temperatures read from stdin, one
// "<value> <from> <to>" request per line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/comalice/drills/internal/settings"
	"github.com/comalice/drills/temperature"
)

const keyPrecision = "precision"

func main() {
	v, err := settings.New(map[string]any{keyPrecision: 2})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := settings.Logger(v.GetString(settings.KeyLogLevel))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	failed, err := run(os.Stdin, os.Stdout, v.GetInt(keyPrecision), logger)
	if err != nil {
		logger.Fatal("read input", zap.Error(err))
	}
	if failed > 0 {
		os.Exit(2)
	}
}

// run converts every non-blank line of in and returns how many lines failed.
func run(in io.Reader, out io.Writer, precision int, logger *zap.Logger) (int, error) {
	failed := 0
	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		req, err := temperature.ParseRequest(line)
		if err != nil {
			failed++
			logger.Info("bad request", zap.Int("line", n), zap.Error(err))
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		res := req.Result()
		logger.Debug("converted",
			zap.Float64("value", req.Value),
			zap.Stringer("from", req.From),
			zap.Stringer("to", req.To),
			zap.Float64("result", res))
		fmt.Fprintf(out, "%s%s\n", strconv.FormatFloat(res, 'f', precision, 64), req.To.Symbol())
	}
	return failed, sc.Err()
}
