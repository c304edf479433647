package workoutexercises

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

//go:generate mockgen -source=handler.go -destination=service_mock_test.go -package=workoutexercises_test

type service interface {
	GetWorkoutExerciseByID(ctx context.Context, id int64) (*models.WorkoutExercise, error)
	ListWorkoutExercises(ctx context.Context) ([]models.WorkoutExercise, error)
	GetWorkoutExercisesByWorkoutID(ctx context.Context, workoutID int64) ([]models.WorkoutExercise, error)
	CreateWorkoutExercise(ctx context.Context, we models.WorkoutExercise) (*models.WorkoutExercise, error)
	UpdateWorkoutExercise(ctx context.Context, id int64, we models.WorkoutExercise) (*models.WorkoutExercise, error)
	DeleteWorkoutExercise(ctx context.Context, id int64) (cascade.Report, error)

	GetSetsByWorkoutExerciseID(ctx context.Context, workoutExerciseID int64) ([]models.Set, error)
	CreateSet(ctx context.Context, set models.Set) (*models.Set, error)
	UpdateSet(ctx context.Context, id int64, set models.Set) (*models.Set, error)
	DeleteSet(ctx context.Context, id int64) (cascade.Report, error)

	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	GetEquipmentBySetID(ctx context.Context, setID int64) ([]models.Equipment, error)
	CreateEquipment(ctx context.Context, e models.Equipment) (*models.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, e models.Equipment) (*models.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) (cascade.Report, error)
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
	router.HandleFunc("/GetAllWorkoutExercises", h.HandleList).Methods("GET").Name("list-workout-exercises")
	router.HandleFunc("/GetWorkoutExerciseById/{id}", h.HandleGet).Methods("GET").Name("get-workout-exercise")
	router.HandleFunc("/GetWorkoutExercisesByWorkoutId/{workoutId}", h.HandleByWorkout).Methods("GET").Name("workout-exercises-by-workout")
	router.HandleFunc("/CreateWorkoutExercise", h.HandleCreate).Methods("POST", "OPTIONS").Name("create-workout-exercise")
	router.HandleFunc("/UpdateWorkoutExercise/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout-exercise")
	router.HandleFunc("/DeleteWorkoutExercise/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout-exercise")

	router.HandleFunc("/GetSetsByWorkoutExerciseId/{id}", h.HandleSets).Methods("GET").Name("sets-by-workout-exercise")
	// older clients still call the listing by its first name
	router.HandleFunc("/GetSetsByExerciseId/{id}", h.HandleSets).Methods("GET").Name("sets-by-exercise")
	router.HandleFunc("/CreateSet", h.HandleCreateSet).Methods("POST", "OPTIONS").Name("create-set")
	router.HandleFunc("/UpdateSet/{id}", h.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	router.HandleFunc("/DeleteSet/{id}", h.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")

	router.HandleFunc("/GetAllEquipment", h.HandleListEquipment).Methods("GET").Name("list-equipment")
	router.HandleFunc("/GetAllEquipmentBySetId/{setId}", h.HandleEquipmentBySet).Methods("GET").Name("equipment-by-set")
	router.HandleFunc("/CreateEquipment", h.HandleCreateEquipment).Methods("POST", "OPTIONS").Name("create-equipment")
	router.HandleFunc("/UpdateEquipment/{id}", h.HandleUpdateEquipment).Methods("PUT", "OPTIONS").Name("update-equipment")
	router.HandleFunc("/DeleteEquipmentById/{id}", h.HandleDeleteEquipment).Methods("DELETE", "OPTIONS").Name("delete-equipment")
}

// workout exercises

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout-exercises.list")
	defer span.End()

	workoutExercises, err := h.service.ListWorkoutExercises(ctx)
	if err != nil {
		httperr.Write(w, "list workout exercises", err)
		return
	}
	pkg.WriteJSON(w, workoutExercises, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout-exercises.get")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "get workout exercise", err)
		return
	}

	we, err := h.service.GetWorkoutExerciseByID(ctx, id)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("get workout exercise %d", id), err)
		return
	}
	pkg.WriteJSON(w, we, http.StatusOK)
}

func (h *Handler) HandleByWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout-exercises.by-workout")
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

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout-exercises.create")
	defer span.End()

	var we models.WorkoutExercise
	if err := httperr.DecodeJSON(r, &we); err != nil {
		httperr.Write(w, "create workout exercise", err)
		return
	}

	created, err := h.service.CreateWorkoutExercise(ctx, we)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("create workout exercise %d", we.ID), err)
		return
	}
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout-exercises.update")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "update workout exercise", err)
		return
	}

	var we models.WorkoutExercise
	if err := httperr.DecodeJSON(r, &we); err != nil {
		httperr.Write(w, fmt.Sprintf("update workout exercise %d", id), err)
		return
	}

	updated, err := h.service.UpdateWorkoutExercise(ctx, id, we)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("update workout exercise %d", id), err)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout-exercises.delete")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "delete workout exercise", err)
		return
	}

	if _, err := h.service.DeleteWorkoutExercise(ctx, id); err != nil {
		httperr.Write(w, fmt.Sprintf("delete workout exercise %d", id), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sets

func (h *Handler) HandleSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.by-workout-exercise")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "get sets by workout exercise", err)
		return
	}

	sets, err := h.service.GetSetsByWorkoutExerciseID(ctx, id)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("get sets of workout exercise %d", id), err)
		return
	}
	if len(sets) == 0 {
		pkg.WriteJSONMessage(w, fmt.Sprintf("no sets found for workout exercise %d", id), http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, sets, http.StatusOK)
}

func (h *Handler) HandleCreateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.create")
	defer span.End()

	var set models.Set
	if err := httperr.DecodeJSON(r, &set); err != nil {
		httperr.Write(w, "create set", err)
		return
	}

	created, err := h.service.CreateSet(ctx, set)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("create set %d", set.ID), err)
		return
	}
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.update")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "update set", err)
		return
	}

	var set models.Set
	if err := httperr.DecodeJSON(r, &set); err != nil {
		httperr.Write(w, fmt.Sprintf("update set %d", id), err)
		return
	}

	updated, err := h.service.UpdateSet(ctx, id, set)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("update set %d", id), err)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.delete")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "delete set", err)
		return
	}

	if _, err := h.service.DeleteSet(ctx, id); err != nil {
		httperr.Write(w, fmt.Sprintf("delete set %d", id), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// equipment

func (h *Handler) HandleListEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.list")
	defer span.End()

	equipment, err := h.service.ListEquipment(ctx)
	if err != nil {
		httperr.Write(w, "list equipment", err)
		return
	}
	pkg.WriteJSON(w, equipment, http.StatusOK)
}

func (h *Handler) HandleEquipmentBySet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.by-set")
	defer span.End()

	setID, err := httperr.PathID(r, "setId")
	if err != nil {
		httperr.Write(w, "get equipment by set", err)
		return
	}

	equipment, err := h.service.GetEquipmentBySetID(ctx, setID)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("get equipment of set %d", setID), err)
		return
	}
	if len(equipment) == 0 {
		pkg.WriteJSONMessage(w, fmt.Sprintf("no equipment found for set %d", setID), http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, equipment, http.StatusOK)
}

func (h *Handler) HandleCreateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.create")
	defer span.End()

	var e models.Equipment
	if err := httperr.DecodeJSON(r, &e); err != nil {
		httperr.Write(w, "create equipment", err)
		return
	}

	created, err := h.service.CreateEquipment(ctx, e)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("create equipment %d", e.ID), err)
		return
	}
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) HandleUpdateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.update")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "update equipment", err)
		return
	}

	var e models.Equipment
	if err := httperr.DecodeJSON(r, &e); err != nil {
		httperr.Write(w, fmt.Sprintf("update equipment %d", id), err)
		return
	}

	updated, err := h.service.UpdateEquipment(ctx, id, e)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("update equipment %d", id), err)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleDeleteEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.delete")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "delete equipment", err)
		return
	}

	if _, err := h.service.DeleteEquipment(ctx, id); err != nil {
		httperr.Write(w, fmt.Sprintf("delete equipment %d", id), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
