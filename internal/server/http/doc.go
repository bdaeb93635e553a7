// Package httpserver exposes the KebabManager HTTP surface: order CRUD
// under /api/orders, the live event stream at /api/orders/stream, the PDF
// export, and the health/metrics endpoints. It owns listener lifecycle and
// graceful shutdown; request behavior lives in the controllers package.
package httpserver
