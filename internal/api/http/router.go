package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gondola-rental-backend/internal/service"
)

// Handlers bundles the service dependencies of the HTTP API.
type Handlers struct {
	Equipment     service.EquipmentService
	Client        service.ClientService
	Rental        service.RentalService
	DeliveryOrder service.DeliveryOrderService
	Document      service.DocumentService
	Logbook       service.LogbookService
}

// NewRouter wires every API route onto a gorilla/mux router.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()

	equipment := NewEquipmentHandler(h.Equipment)
	clients := NewClientHandler(h.Client)
	rentals := NewRentalHandler(h.Rental)
	orders := NewDeliveryOrderHandler(h.DeliveryOrder)
	documents := NewDocumentHandler(h.Document)
	logbook := NewLogbookHandler(h.Logbook)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/equipment", equipment.Create).Methods(http.MethodPost)
	api.HandleFunc("/equipment", equipment.List).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id:[0-9]+}", equipment.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id:[0-9]+}", equipment.Update).Methods(http.MethodPut)

	api.HandleFunc("/clients", clients.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients", clients.List).Methods(http.MethodGet)
	api.HandleFunc("/clients/bulk-delete", clients.BulkDelete).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id:[0-9]+}", clients.Get).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id:[0-9]+}", clients.Update).Methods(http.MethodPut)

	api.HandleFunc("/rentals", rentals.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals", rentals.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/bulk-delete", rentals.BulkDelete).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}", rentals.Get).Methods(http.MethodGet)

	api.HandleFunc("/delivery-orders", orders.Create).Methods(http.MethodPost)
	api.HandleFunc("/delivery-orders", orders.List).Methods(http.MethodGet)
	api.HandleFunc("/delivery-orders/{id:[0-9]+}", orders.Get).Methods(http.MethodGet)
	api.HandleFunc("/delivery-orders/{id:[0-9]+}", orders.Update).Methods(http.MethodPut)

	api.HandleFunc("/documents", documents.Create).Methods(http.MethodPost)
	api.HandleFunc("/documents", documents.List).Methods(http.MethodGet)
	api.HandleFunc("/documents/{id:[0-9]+}", documents.Get).Methods(http.MethodGet)
	api.HandleFunc("/documents/{id:[0-9]+}", documents.Update).Methods(http.MethodPut)
	api.HandleFunc("/documents/{id:[0-9]+}/file", documents.DownloadFile).Methods(http.MethodGet)

	api.HandleFunc("/inspections", logbook.CreateInspection).Methods(http.MethodPost)
	api.HandleFunc("/inspections", logbook.ListInspections).Methods(http.MethodGet)
	api.HandleFunc("/shifts", logbook.CreateShift).Methods(http.MethodPost)
	api.HandleFunc("/shifts", logbook.ListShifts).Methods(http.MethodGet)

	return r
}
