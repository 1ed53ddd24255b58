package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	totalVisitsDesc = prometheus.NewDesc(
		"bsod_total_visits", "Total number of BSOD page visits", nil, nil)
	apiCallsDesc = prometheus.NewDesc(
		"bsod_api_calls", "Total number of API calls", nil, nil)
	customMessagesDesc = prometheus.NewDesc(
		"bsod_custom_messages", "Total number of custom messages", nil, nil)
	uptimeDesc = prometheus.NewDesc(
		"bsod_uptime_seconds", "Application uptime in seconds", nil, nil)
)

// Collector exposes an Aggregator's summary as Prometheus metrics. Every
// scrape reads one consistent snapshot.
type Collector struct {
	agg *Aggregator
}

// NewCollector creates a Collector over agg.
func NewCollector(agg *Aggregator) *Collector {
	return &Collector{agg: agg}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- totalVisitsDesc
	ch <- apiCallsDesc
	ch <- customMessagesDesc
	ch <- uptimeDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.agg.Summary()

	ch <- prometheus.MustNewConstMetric(totalVisitsDesc, prometheus.CounterValue, float64(s.TotalVisits))
	ch <- prometheus.MustNewConstMetric(apiCallsDesc, prometheus.CounterValue, float64(s.APICalls))
	ch <- prometheus.MustNewConstMetric(customMessagesDesc, prometheus.CounterValue, float64(s.CustomMessageCount))
	ch <- prometheus.MustNewConstMetric(uptimeDesc, prometheus.GaugeValue, float64(s.Uptime.Seconds))
}

// NewRegistry returns a registry holding only the collector for agg.
func NewRegistry(agg *Aggregator) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector(agg))
	return reg
}
