package controllers

import (
	"github.com/gorilla/mux"

	"github.com/andrewmaci/KebabManager/internal/runtime"
)

// Registry manages all HTTP controllers.
type Registry struct {
	general *GeneralController
	orders  *OrdersController
	stream  *StreamController
}

// NewRegistry initializes all controllers with the provided runtime.
func NewRegistry(rt *runtime.Runtime) *Registry {
	return &Registry{
		general: NewGeneralController(rt),
		orders:  NewOrdersController(rt),
		stream:  NewStreamController(rt),
	}
}

// RegisterAllRoutes registers every controller's routes with the router.
func (r *Registry) RegisterAllRoutes(router *mux.Router) {
	r.general.RegisterRoutes(router)
	r.orders.RegisterRoutes(router)
	r.stream.RegisterRoutes(router)
}
