package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func SetupPrometheus() *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	// Add Go module build info, so the textfile tells which build produced it.
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
	)

	return promRegistry
}

// WriteTextfile dumps everything gathered by g into path, in the format
// understood by the node exporter textfile collector.
// The file is written atomically (temp file + rename).
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
