// Package export renders order lists into downloadable documents. The PDF
// report mirrors the storefront's layout: a title, the report date, and a
// grid table with one row per order.
package export
