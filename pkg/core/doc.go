// Package core defines the shared language of the termsql system.
//
// This package contains:
//   - Standard SQL types (StandardType)
//   - Catalog entities (Database, Table, Column) linked by IDs
//   - Configuration types (DialectConfig, AdapterConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
