package metrics

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/netxfw/eventlog/internal/journal"
	"github.com/netxfw/eventlog/internal/record"
	"github.com/netxfw/eventlog/internal/utils/fileutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/prometheus/common/expfmt"
)

// textFormat is the node_exporter textfile / Pushgateway exposition format.
const textFormat = expfmt.Format("text/plain; version=0.0.4")

// Collector exposes journal statistics as Prometheus gauges on a private registry.
// Collector 在私有注册表上以 Prometheus 指标形式暴露日志统计信息。
type Collector struct {
	registry *prometheus.Registry

	// Events per type and level / 按类型和级别统计的事件数
	Events *prometheus.GaugeVec
	// Lines skipped as undecodable / 无法解码而跳过的行数
	MalformedLines prometheus.Gauge
	// Unix time of the newest record / 最新记录的 Unix 时间
	LastEvent prometheus.Gauge
}

// NewCollector creates a collector with its own registry.
// NewCollector 创建带有独立注册表的收集器。
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		Events: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "eventlog_events",
				Help: "Number of events in the journal by type and level",
			},
			[]string{"type", "level"},
		),
		MalformedLines: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "eventlog_malformed_lines",
				Help: "Number of journal lines that could not be decoded",
			},
		),
		LastEvent: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "eventlog_last_event_timestamp_seconds",
				Help: "Unix timestamp of the newest journal event",
			},
		),
	}
}

// Registry returns the private registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Update replaces all gauge values with s. Every known type and level
// combination is exported, with zero when absent.
// Update 用 s 替换所有指标值，所有已知的类型与级别组合都会导出，缺失时为零。
func (c *Collector) Update(s *journal.Stats) {
	c.Events.Reset()
	for _, t := range record.EventTypes {
		for _, l := range record.Levels {
			c.Events.WithLabelValues(string(t), string(l)).Set(0)
		}
	}
	for key, n := range s.Counts {
		c.Events.WithLabelValues(key.Type, key.Level).Set(float64(n))
	}

	c.MalformedLines.Set(float64(s.Malformed))
	if s.Last.IsZero() {
		c.LastEvent.Set(0)
	} else {
		c.LastEvent.Set(float64(s.Last.Unix()))
	}
}

// WriteText writes the registry in the Prometheus text format.
// WriteText 以 Prometheus 文本格式写出注册表。
func (c *Collector) WriteText(w io.Writer) error {
	mfs, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, textFormat)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		return closer.Close()
	}
	return nil
}

// WriteTextFile writes the metrics atomically to path for the node_exporter
// textfile collector.
// WriteTextFile 以原子方式将指标写入 path，供 node_exporter 文本文件收集器使用。
func (c *Collector) WriteTextFile(path string) error {
	var buf bytes.Buffer
	if err := c.WriteText(&buf); err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(path, buf.Bytes(), 0644)
}

// Push sends the metrics to a Pushgateway under job.
// Push 将指标以 job 名称推送到 Pushgateway。
func (c *Collector) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(c.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("could not push to %s: %w", url, err)
	}
	return nil
}
