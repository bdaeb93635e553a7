// Package controllers implements the HTTP request handlers: order CRUD
// with mutation broadcasts, the SSE stream session loop, the PDF export,
// and the operational endpoints.
package controllers
