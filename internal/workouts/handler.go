package workouts

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/trainingtracker/internal/cascade"
	"github.com/2beens/trainingtracker/internal/httperr"
	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=handler.go -destination=service_mock_test.go -package=workouts_test

type service interface {
	GetWorkoutByID(ctx context.Context, id int64) (*models.Workout, error)
	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	CreateWorkout(ctx context.Context, w models.Workout) (*models.Workout, error)
	UpdateWorkout(ctx context.Context, id int64, w models.Workout) (*models.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) (cascade.Report, error)
	GetWorkoutExercisesByWorkoutID(ctx context.Context, workoutID int64) ([]models.WorkoutExercise, error)
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
	router.HandleFunc("/GetAllWorkouts", h.HandleList).Methods("GET").Name("list-workouts")
	router.HandleFunc("/GetWorkoutById/{id}", h.HandleGet).Methods("GET").Name("get-workout")
	router.HandleFunc("/CreateWorkout", h.HandleCreate).Methods("POST", "OPTIONS").Name("create-workout")
	router.HandleFunc("/UpdateWorkout/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	router.HandleFunc("/DeleteWorkout/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	router.HandleFunc("/GetWorkoutExercisesByWorkoutId/{workoutId}", h.HandleWorkoutExercises).Methods("GET").Name("workout-workout-exercises")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	workouts, err := h.service.ListWorkouts(ctx)
	if err != nil {
		httperr.Write(w, "list workouts", err)
		return
	}
	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "get workout", err)
		return
	}

	workout, err := h.service.GetWorkoutByID(ctx, id)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("get workout %d", id), err)
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	var workout models.Workout
	if err := httperr.DecodeJSON(r, &workout); err != nil {
		httperr.Write(w, "create workout", err)
		return
	}

	created, err := h.service.CreateWorkout(ctx, workout)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("create workout %d", workout.ID), err)
		return
	}
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "update workout", err)
		return
	}

	var workout models.Workout
	if err := httperr.DecodeJSON(r, &workout); err != nil {
		httperr.Write(w, fmt.Sprintf("update workout %d", id), err)
		return
	}

	updated, err := h.service.UpdateWorkout(ctx, id, workout)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("update workout %d", id), err)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "delete workout", err)
		return
	}

	if _, err := h.service.DeleteWorkout(ctx, id); err != nil {
		httperr.Write(w, fmt.Sprintf("delete workout %d", id), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleWorkoutExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.workout-exercises")
	defer span.End()

	workoutID, err := httperr.PathID(r, "workoutId")
	if err != nil {
		httperr.Write(w, "get workout exercises by workout", err)
		return
	}

	workoutExercises, err := h.service.GetWorkoutExercisesByWorkoutID(ctx, workoutID)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("get workout exercises of workout %d", workoutID), err)
		return
	}
	if len(workoutExercises) == 0 {
		pkg.WriteJSONMessage(w, fmt.Sprintf("no workout exercises found for workout %d", workoutID), http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, workoutExercises, http.StatusOK)
}
