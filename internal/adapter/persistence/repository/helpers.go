package repository

import "os"

// getenvDefault resolves a table name override (INVOICES_TABLE,
// COMMERCES_TABLE, CONTRACTS_TABLE, TARIFFS_TABLE) or falls back to the
// default used by the local DynamoDB setup.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
