// Package batch converts many timestamps, one per input line.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hlop3z/tzconv/internal/alerr"
	"github.com/hlop3z/tzconv/internal/convert"
	"github.com/hlop3z/tzconv/internal/tzdb"
)

// Config controls a batch run.
type Config struct {
	From        string
	To          string
	Concurrency int // <= 0 means GOMAXPROCS
	Options     []convert.Option
}

// slot is one non-blank input line and, once done is closed, its result.
type slot struct {
	line  int // 1-based
	input string
	out   string
	err   error
	done  chan struct{}
}

// Run reads timestamps from r, one per line, and writes each converted
// timestamp to w in input order as soon as it and every line before it are
// done. Blank lines are skipped. At most Concurrency lines are in flight, so
// memory does not grow with the input.
//
// Conversion stops at the first failing line: the lines before it are written
// and its error, tagged with the line number, is returned. A line too long to
// read fails the same way. Run returns the number of lines written; on failure
// it does not wait for r to reach EOF.
func Run(ctx context.Context, r io.Reader, w io.Writer, cfg Config) (int, error) {
	// Unknown zones fail every line; report them once, before reading input.
	var zoneErrs []error
	if _, err := tzdb.Resolve(cfg.From); err != nil {
		zoneErrs = append(zoneErrs, err)
	}
	if _, err := tzdb.Resolve(cfg.To); err != nil {
		zoneErrs = append(zoneErrs, err)
	}
	if len(zoneErrs) > 0 {
		return 0, errors.Join(zoneErrs...)
	}

	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pending := make(chan *slot, limit)
	var readErr error
	go func() {
		defer close(pending)
		readErr = dispatch(ctx, r, pending, limit, cfg)
	}()

	bw := bufio.NewWriter(w)
	written := 0
	for s := range pending {
		<-s.done
		if s.err != nil {
			cancel()
			if err := bw.Flush(); err != nil {
				return written, err
			}
			return written, s.err
		}
		if _, err := fmt.Fprintln(bw, s.out); err != nil {
			cancel()
			return written, err
		}
		written++
		// Nothing else is ready: show what we have before blocking on input.
		if len(pending) == 0 {
			if err := bw.Flush(); err != nil {
				cancel()
				return written, err
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return written, err
	}
	if readErr != nil {
		return written, readErr
	}

	slog.Debug("batch: converted lines", "count", written, "from", cfg.From, "to", cfg.To)
	return written, nil
}

// dispatch scans r and queues one slot per non-blank line on pending, in input
// order, converting each on the errgroup. It returns when r is exhausted, ctx
// is cancelled or a line cannot be read; an unreadable line is queued as a
// failed slot so the writer reports it in order.
func dispatch(ctx context.Context, r io.Reader, pending chan<- *slot, limit int, cfg Config) error {
	var g errgroup.Group
	g.SetLimit(limit)
	defer g.Wait()

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		s := &slot{line: line, input: text, done: make(chan struct{})}
		select {
		case pending <- s:
		case <-ctx.Done():
			return ctx.Err()
		}
		g.Go(func() error {
			defer close(s.done)
			s.out, s.err = convert.Convert(s.input, cfg.From, cfg.To, cfg.Options...)
			if s.err != nil {
				s.err = withLine(s.err, s.line)
			}
			return nil
		})
	}

	err := scanner.Err()
	if err == nil {
		return nil
	}
	line++
	if errors.Is(err, bufio.ErrTooLong) {
		err = alerr.Wrap(alerr.ErrParse, err, "invalid timestamp").
			WithLine(line).
			WithNote("the line is longer than any timestamp")
	} else {
		err = alerr.Wrap(alerr.ErrMissingInput, err, "failed to read input").WithLine(line)
	}

	s := &slot{line: line, err: err, done: make(chan struct{})}
	close(s.done)
	select {
	case pending <- s:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func withLine(err error, line int) error {
	for _, e := range alerr.All(err) {
		e.WithLine(line)
	}
	return err
}
