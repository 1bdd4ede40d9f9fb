package metrics

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	statsdlib "github.com/CMGS/statsd"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/projecteru2/memsize/log"
	"github.com/projecteru2/memsize/options"
	"github.com/projecteru2/memsize/types"
)

const (
	checkedName  = "memsize_checked_total"
	failuresName = "memsize_parse_failures_total"
	checkedKey   = "memsize.%s.checked.%s"
	failuresKey  = "memsize.%s.failures.%s"

	resultOK   = "ok"
	resultFail = "fail"
)

// Metrics counts checked option values
type Metrics struct {
	StatsdAddr   string
	Hostname     string
	statsdClient *statsdlib.Client
	mu           sync.Mutex

	registry *prometheus.Registry
	checked  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// New new a metrics obj with its own registry
func New(config types.Config) (*Metrics, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}
	m := &Metrics{
		StatsdAddr: config.Statsd,
		Hostname:   cleanStatsdMetrics(hostname),
		registry:   prometheus.NewRegistry(),
		checked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: checkedName,
			Help: "memory size values checked",
		}, []string{"result"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: failuresName,
			Help: "memory size values rejected, by reason",
		}, []string{"reason"}),
	}
	if err := m.registry.Register(m.checked); err != nil {
		return nil, err
	}
	if err := m.registry.Register(m.failures); err != nil {
		return nil, err
	}
	return m, nil
}

// Observe counts one checked value, err is the parse or validation error
func (m *Metrics) Observe(ctx context.Context, err error) {
	if m == nil {
		return
	}
	logger := log.WithFunc("metrics.Observe")
	result := resultOK
	if err != nil {
		result = resultFail
		reason := options.Reason(err)
		m.failures.WithLabelValues(reason).Inc()
		if err := m.count(ctx, fmt.Sprintf(failuresKey, m.Hostname, reason), 1, 1.0); err != nil {
			logger.Error(ctx, err, "Error occurred while sending failures to statsd")
		}
	}
	m.checked.WithLabelValues(result).Inc()
	if err := m.count(ctx, fmt.Sprintf(checkedKey, m.Hostname, result), 1, 1.0); err != nil {
		logger.Error(ctx, err, "Error occurred while sending checked to statsd")
	}
}

// Gatherer exposes the registry
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics in the text exposition format,
// for the node exporter textfile collector
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Lazy connect
func (m *Metrics) checkConn(ctx context.Context) error {
	if m.statsdClient != nil {
		return nil
	}
	logger := log.WithFunc("metrics.checkConn")
	var err error
	// only UDP, nothing to reconnect
	if m.statsdClient, err = statsdlib.New(m.StatsdAddr, statsdlib.WithErrorHandler(func(err error) {
		logger.Error(ctx, err, "Sending statsd failed")
	})); err != nil {
		logger.Error(ctx, err, "Connect statsd failed")
		return err
	}
	return nil
}

func (m *Metrics) count(ctx context.Context, key string, n int, rate float32) error {
	if m.StatsdAddr == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkConn(ctx); err != nil {
		return err
	}
	m.statsdClient.Count(key, n, rate)
	return nil
}

// Close flushes statsd
func (m *Metrics) Close() {
	if m != nil && m.statsdClient != nil {
		m.statsdClient.Close()
	}
}

func cleanStatsdMetrics(k string) string {
	return strings.ReplaceAll(k, ".", "-")
}
