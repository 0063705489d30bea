// Package metrics holds the Prometheus collectors of the dashboard components.
package metrics

import "github.com/goodnatureofminers/paychain-dashboard/internal/ledger"

const namespace = "paychain"

// status maps an outcome to a bounded label value: success, a ledger error kind, or error.
func status(err error) string {
	if err == nil {
		return "success"
	}
	if kind, ok := ledger.KindOf(err); ok {
		return string(kind)
	}
	return "error"
}
