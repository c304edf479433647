package users

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

//go:generate mockgen -source=handler.go -destination=service_mock_test.go -package=users_test

type service interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	AddUser(ctx context.Context, u models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, u models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (cascade.Report, error)
	GetWorkoutsByUserID(ctx context.Context, userID int64) ([]models.Workout, error)
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
	router.HandleFunc("/GetAllUsers", h.HandleList).Methods("GET").Name("list-users")
	router.HandleFunc("/GetUserById/{id}", h.HandleGet).Methods("GET").Name("get-user")
	router.HandleFunc("/AddUser", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-user")
	router.HandleFunc("/UpdateUser/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-user")
	router.HandleFunc("/DeleteUser/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-user")
	router.HandleFunc("/GetWorkoutsByUserId/{userId}", h.HandleWorkouts).Methods("GET").Name("user-workouts")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.list")
	defer span.End()

	users, err := h.service.ListUsers(ctx)
	if err != nil {
		httperr.Write(w, "list users", err)
		return
	}
	pkg.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "get user", err)
		return
	}

	u, err := h.service.GetUserByID(ctx, id)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("get user %d", id), err)
		return
	}
	pkg.WriteJSON(w, u, http.StatusOK)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.add")
	defer span.End()

	var u models.User
	if err := httperr.DecodeJSON(r, &u); err != nil {
		httperr.Write(w, "add user", err)
		return
	}

	added, err := h.service.AddUser(ctx, u)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("add user %d", u.ID), err)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "update user", err)
		return
	}

	var u models.User
	if err := httperr.DecodeJSON(r, &u); err != nil {
		httperr.Write(w, fmt.Sprintf("update user %d", id), err)
		return
	}

	updated, err := h.service.UpdateUser(ctx, id, u)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("update user %d", id), err)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.delete")
	defer span.End()

	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, "delete user", err)
		return
	}

	if _, err := h.service.DeleteUser(ctx, id); err != nil {
		httperr.Write(w, fmt.Sprintf("delete user %d", id), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.workouts")
	defer span.End()

	userID, err := httperr.PathID(r, "userId")
	if err != nil {
		httperr.Write(w, "get workouts by user", err)
		return
	}

	workouts, err := h.service.GetWorkoutsByUserID(ctx, userID)
	if err != nil {
		httperr.Write(w, fmt.Sprintf("get workouts of user %d", userID), err)
		return
	}
	if len(workouts) == 0 {
		pkg.WriteJSONMessage(w, fmt.Sprintf("no workouts found for user %d", userID), http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, workouts, http.StatusOK)
}
