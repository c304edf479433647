package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/trainingtracker/internal/httperr"
	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=handler.go -destination=service_mock_test.go -package=catalog_test

type service interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	GetExerciseByID(ctx context.Context, id int) (*models.Exercise, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/GetAllExercises", h.HandleList).Methods("GET").Name("list-exercises")
	router.HandleFunc("/GetExerciseById/{id}", h.HandleGet).Methods("GET").Name("get-exercise")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	exercises, err := h.service.ListExercises(ctx)
	if err != nil {
		httperr.Write(w, "list exercises", err)
		return
	}
	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "get exercise", err)
		return
	}

	exercise, err := h.service.GetExerciseByID(ctx, int(id))
	if err != nil {
		httperr.Write(w, fmt.Sprintf("get exercise %d", id), err)
		return
	}
	pkg.WriteJSON(w, exercise, http.StatusOK)
}
