package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RemoteRequests counts backend round-trips by endpoint and outcome.
	RemoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rupeeshop_remote_requests_total",
			Help: "Total number of backend requests",
		},
		[]string{"endpoint", "status"},
	)

	// StoreOperations counts store mutations by operation and outcome.
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rupeeshop_store_operations_total",
			Help: "Total number of shop store operations",
		},
		[]string{"operation", "status"},
	)

	// Notifications counts user-facing notifications by severity.
	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rupeeshop_notifications_total",
			Help: "Total number of user notifications emitted",
		},
		[]string{"severity"},
	)
)
