// Package histstore persists finished readings and forecasts.
package histstore

import (
	"fmt"

	"github.com/augur-cli/augur/schema"
)

// historyTable is the name of the table for history records.
const historyTable = "augur_history"

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}
