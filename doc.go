// Package balancesheet provides the types and functions to build a simple
// balance sheet from a fixed catalog of line items, and to compute its
// totals, owner's equity and basic financial ratios.
//
// The core functionalities include:
//   - Ledger: an ordered, in-memory list of assets and liabilities.
//   - Catalog: the fixed categories of line items, with the predetermined
//     current/non-current classification of assets.
//   - Aggregator: a stateless engine computing filtered totals, equity and
//     ratios over a snapshot of a ledger.
//   - Session: the interactive collection of one value per category.
//   - Input formats: JSONL answer files and JSONPath extraction from
//     arbitrary JSON exports.
//
// Rendering lives in the renderer package, and the `bs` command-line tool in
// the cmd package.
package balancesheet
