// Package metrics defines the custom Prometheus metrics for the products API.
// It is the single source of truth for metric names, labels, and help strings.
// Metrics register with the default registry at init via promauto; the
// echoprometheus middleware adds the HTTP-level series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "products_api"

// UsersRegisteredTotal counts successful registrations by assigned role.
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// UserLoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "inactive" or "error"
var UserLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ProductsCreatedTotal counts newly created products.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// ProductsDeletedTotal counts product deletions.
// Label:
//   - mode: "soft" (active flag cleared) or "hard" (row removed)
var ProductsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_deleted_total",
		Help:      "Total number of product deletions, by mode (soft/hard).",
	},
	[]string{"mode"},
)
