package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/andrewmaci/KebabManager/internal/events"
	"github.com/andrewmaci/KebabManager/internal/export"
	"github.com/andrewmaci/KebabManager/internal/order"
	"github.com/andrewmaci/KebabManager/internal/runtime"
	logpkg "github.com/andrewmaci/KebabManager/pkg/log"
)

// OrdersController handles order CRUD and the PDF export.
//
// Every successful mutation persists first, then broadcasts the matching
// event to all connected stream subscribers, and only then responds. A
// failed store operation never broadcasts.
type OrdersController struct {
	rt     *runtime.Runtime
	logger *logpkg.Logger
}

// NewOrdersController creates the orders controller.
func NewOrdersController(rt *runtime.Runtime) *OrdersController {
	return &OrdersController{rt: rt, logger: rt.Logger().With(logpkg.Component("orders"))}
}

// RegisterRoutes registers the order endpoints.
func (c *OrdersController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/orders", c.handleList).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", c.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/api/orders/pdf", c.handleExportPDF).Methods(http.MethodPost)
	r.HandleFunc("/api/orders/{id}", c.handleUpdate).Methods(http.MethodPut)
	r.HandleFunc("/api/orders/{id}", c.handleDelete).Methods(http.MethodDelete)
}

// handleList returns all orders, optionally filtered by exact date match.
func (c *OrdersController) handleList(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	orders, err := c.rt.Store().List(r.Context(), date)
	if err != nil {
		c.logger.Error("list orders", logpkg.Err(err))
		writeError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, orders)
}

// handleCreate validates the input, persists a new order under a generated
// id, and broadcasts new_order.
func (c *OrdersController) handleCreate(w http.ResponseWriter, r *http.Request) {
	var data order.Data
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := data.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	o := order.New(data)
	if err := c.rt.Store().Create(r.Context(), o); err != nil {
		c.logger.Error("create order", logpkg.Err(err))
		writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}
	c.rt.Hub().Broadcast(events.NewOrder(o))
	writeJSON(w, o)
}

// handleUpdate replaces all mutable fields of an existing order and
// broadcasts update_order. The id never changes.
func (c *OrdersController) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var data order.Data
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := data.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	o := order.Order{ID: id, Data: data}
	if err := c.rt.Store().Replace(r.Context(), o); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		c.logger.Error("update order", logpkg.Str("id", id), logpkg.Err(err))
		writeError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}
	c.rt.Hub().Broadcast(events.UpdateOrder(o))
	writeJSON(w, o)
}

// handleDelete removes an order and broadcasts delete_order with the id
// and, when the record had one, its date.
func (c *OrdersController) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := c.rt.Store().Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		c.logger.Error("delete order", logpkg.Str("id", id), logpkg.Err(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	c.rt.Hub().Broadcast(events.DeleteOrder(deleted))
	writeJSON(w, map[string]string{"message": "Order deleted"})
}

// handleExportPDF renders the posted order list as a tabular PDF report.
func (c *OrdersController) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	var orders []order.Data
	if err := json.NewDecoder(r.Body).Decode(&orders); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	date := r.URL.Query().Get("date")

	var buf bytes.Buffer
	if err := export.OrderReportPDF(&buf, orders, date); err != nil {
		c.logger.Error("render pdf", logpkg.Err(err))
		writeError(w, http.StatusInternalServerError, "Failed to render report")
		return
	}
	filename := "kebab-order-report.pdf"
	if date != "" {
		filename = "kebab-order-report-" + date + ".pdf"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(buf.Bytes())
}
