package cascade

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// CountRemoved returns a listener incrementing counter, labeled by row kind.
func CountRemoved(counter *prometheus.CounterVec) Listener {
	return func(_ context.Context, ref Ref) {
		counter.WithLabelValues(string(ref.Kind)).Inc()
	}
}
