// Package metrics defines the custom Prometheus metrics for the record
// manager. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "minipress"

// RecordsCreatedTotal counts successfully created records.
// Label:
//   - entity: "user" or "post"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by entity.",
	},
	[]string{"entity"},
)

// RecordsDeletedTotal counts delete requests that completed, including
// no-op deletes of absent ids.
// Label:
//   - entity: "user" or "post"
var RecordsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of record deletions processed, by entity.",
	},
	[]string{"entity"},
)
