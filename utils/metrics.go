package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricItemsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "treedo",
		Name:      "items_created_total",
		Help:      "Number of items created, each with its own child list",
	})

	MetricSubtreeItemsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "treedo",
		Name:      "subtree_items_deleted_total",
		Help:      "Number of items deleted by subtree deletions, the targeted items included",
	})

	MetricRootListCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "treedo",
		Name:      "root_list_created_total",
		Help:      "Number of times the root list had to be created",
	})
)
