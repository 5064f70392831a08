package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated is a Prometheus counter for tracking the total number of products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created",
	})

	// ProductsUpdated is a Prometheus counter for tracking the total number of products updated.
	ProductsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_updated_total",
		Help: "The total number of products updated",
	})

	// ProductsDeleted is a Prometheus counter for tracking the total number of products deleted.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "The total number of products deleted",
	})

	// RemoteFailures counts failed calls from the web front-end to the catalog API, by operation.
	RemoteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_web_remote_failures_total",
		Help: "The total number of failed catalog API calls made by the web front-end",
	}, []string{"op"})

	// Renders counts pages rendered by the web front-end, by view and render mode.
	Renders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_web_renders_total",
		Help: "The total number of pages rendered by the web front-end",
	}, []string{"view", "mode"})
)
