package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/andrewmaci/KebabManager/internal/runtime"
)

// GeneralController handles the operational endpoints.
type GeneralController struct {
	rt *runtime.Runtime
}

// NewGeneralController creates the general controller.
func NewGeneralController(rt *runtime.Runtime) *GeneralController {
	return &GeneralController{rt: rt}
}

// RegisterRoutes registers health and metrics endpoints.
func (c *GeneralController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", c.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", c.rt.Metrics().Handler()).Methods(http.MethodGet)
}

func (c *GeneralController) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := c.rt.CheckHealth(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_serving")
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}
