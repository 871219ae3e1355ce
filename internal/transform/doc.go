// Package transform implements the transform stage of the
// accounts-receivable ETL: column preparation of the raw table, the fixed
// filter sequence, enrichment against the region reference table, and the
// two summary views (top-40 debtors per region and aggregate totals per
// entity and country).
//
// The stage is a fixed sequence of relational operations on an in-memory
// table; every function is pure over its inputs except LoadRegions, which
// reads the reference file.
package transform
