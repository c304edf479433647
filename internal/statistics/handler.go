package statistics

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

//go:generate mockgen -source=handler.go -destination=service_mock_test.go -package=statistics_test

type service interface {
	ComputeWeeklyAggregate(ctx context.Context, exerciseID int) (*models.WeeklyStatistics, error)
	ListWeeklyStatistics(ctx context.Context) ([]models.WeeklyStatistics, error)
	DeleteAllWeeklyStatistics(ctx context.Context) (int64, error)
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
	router.HandleFunc("/GetAggregatedStatistics/{exerciseId}", h.HandleAggregate).Methods("GET").Name("aggregate-statistics")
	router.HandleFunc("/GetAllUsersWeekStatistics", h.HandleList).Methods("GET").Name("list-statistics")
	router.HandleFunc("/DeleteAllUsersWeekStatistics", h.HandleDeleteAll).Methods("DELETE", "OPTIONS").Name("delete-statistics")
}

// HandleAggregate computes and stores a new snapshot, so every call writes.
func (h *Handler) HandleAggregate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.statistics.aggregate")
	defer span.End()

	exerciseID, err := httperr.PathID(r, "exerciseId")
	if err != nil {
		httperr.Write(w, "aggregate statistics", err)
		return
	}

	stats, err := h.service.ComputeWeeklyAggregate(ctx, int(exerciseID))
	if err != nil {
		httperr.Write(w, fmt.Sprintf("aggregate statistics of exercise %d", exerciseID), err)
		return
	}
	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.statistics.list")
	defer span.End()

	stats, err := h.service.ListWeeklyStatistics(ctx)
	if err != nil {
		httperr.Write(w, "list weekly statistics", err)
		return
	}
	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.statistics.delete-all")
	defer span.End()

	if _, err := h.service.DeleteAllWeeklyStatistics(ctx); err != nil {
		httperr.Write(w, "delete all weekly statistics", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
