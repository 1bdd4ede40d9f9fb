// Package checker validates option files against an option set.
package checker

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/projecteru2/memsize/log"
	"github.com/projecteru2/memsize/metrics"
	"github.com/projecteru2/memsize/options"
	"github.com/projecteru2/memsize/types"
	"github.com/projecteru2/memsize/utils"
)

// Result is the outcome of one assignment
type Result struct {
	File      string
	Line      int // zero for structured files
	Name      string
	Value     string
	Canonical string
	Err       error
}

// Report holds the results of one file
type Report struct {
	File    string
	Results []Result
	Err     error // set when the file itself could not be read
}

// Failed counts failed assignments, an unreadable file counts as one
func (r *Report) Failed() int {
	if r.Err != nil {
		return 1
	}
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Checker checks option files concurrently
type Checker struct {
	set         *options.Set
	concurrency int
	maxFileSize int64
	metrics     *metrics.Metrics
	cache       *utils.ValidationCache
}

// same as the config defaults, for callers not going through utils.LoadConfig
const (
	defaultConcurrency = 8
	defaultMaxFileSize = 1 << 20
)

// New new a checker, m can be nil
// unset limits in config fall back to the config defaults
func New(set *options.Set, config types.Config, m *metrics.Metrics) *Checker {
	concurrency := config.MaxConcurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	maxFileSize := int64(config.MaxFileSize)
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	return &Checker{
		set:         set,
		concurrency: concurrency,
		maxFileSize: maxFileSize,
		metrics:     m,
		cache:       utils.NewValidationCache(5*time.Minute, 10*time.Minute),
	}
}

// Check checks every file, reports keep the order of paths
func (c *Checker) Check(ctx context.Context, paths []string) ([]*Report, error) {
	if len(paths) == 0 {
		return nil, types.ErrNoFiles
	}
	ctx = context.WithValue(ctx, types.TracingID, uuid.NewString())
	logger := log.WithFunc("checker.Check")

	pool, err := utils.NewPool(ctx, c.concurrency)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	reports := make([]*Report, len(paths))
	wg := &sync.WaitGroup{}
	for i, path := range paths {
		i, path := i, path
		reports[i] = &Report{File: path, Err: errors.Newf("check of %s did not finish", path)}
		wg.Add(1)
		if err := pool.Invoke(func() {
			defer wg.Done()
			reports[i] = c.checkFile(ctx, path)
		}); err != nil {
			wg.Done()
			reports[i].Err = err
			logger.Error(ctx, err, "submit check task failed")
		}
	}
	wg.Wait()

	logger.Debugf(ctx, "%d files checked", len(paths))
	return reports, nil
}

func (c *Checker) checkFile(ctx context.Context, path string) *Report {
	logger := log.WithFunc("checker.checkFile").WithField("file", path)
	report := &Report{File: path}

	info, err := os.Stat(path)
	if err != nil {
		report.Err = err
		return report
	}
	if info.Size() > c.maxFileSize {
		report.Err = errors.Wrapf(types.ErrFileTooLarge, "%s is %s, limit %s",
			path, utils.HumanSize(info.Size()), utils.HumanSize(c.maxFileSize))
		return report
	}

	var entries []entry
	if isStructured(path) {
		entries, err = loadStructured(path)
	} else {
		entries, err = loadFlags(path)
	}
	if err != nil {
		report.Err = err
		logger.Error(ctx, err, "load option file failed")
		return report
	}

	for _, e := range entries {
		report.Results = append(report.Results, c.checkEntry(ctx, path, e))
	}
	return report
}

func (c *Checker) checkEntry(ctx context.Context, path string, e entry) Result {
	res := Result{File: path, Line: e.line, Name: e.name, Value: e.value, Err: e.err}
	if res.Err == nil {
		if o, ok := c.set.Lookup(e.name); ok {
			v, found := c.cache.Get(e.name, e.value)
			if !found {
				v.Canonical, v.Err = o.Validate(e.value)
				c.cache.Set(e.name, e.value, v)
			}
			res.Canonical, res.Err = v.Canonical, v.Err
		} else {
			res.Err = errors.Wrapf(options.ErrUnknownOption, "%s", e.name)
		}
	}
	c.metrics.Observe(ctx, res.Err)

	if res.Err != nil {
		log.WithFunc("checker.checkEntry").
			WithField("file", path).
			WithField("line", e.line).
			WithField("reason", options.Reason(res.Err)).
			Warnf(ctx, "%s=%s rejected: %v", e.name, e.value, res.Err)
	}
	return res
}
