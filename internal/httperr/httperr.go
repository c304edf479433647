package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const internalErrorMessage = "internal server error"

func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write logs err under op and writes it as a JSON message. Unexpected errors are
// not echoed back to the client.
func Write(w http.ResponseWriter, op string, err error) {
	status := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
		msg = internalErrorMessage
	} else {
		log.Warnf("%s: %s", op, err)
	}
	pkg.WriteJSONMessage(w, msg, status)
}

// DecodeJSON reads the request body into v. Bad content type or malformed json
// yield a validation error.
func DecodeJSON(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != pkg.ContentType.JSON {
		return models.ValidationError("invalid content type, expected %s", pkg.ContentType.JSON)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("malformed request body: %s: %w", err, models.ErrValidation)
	}
	return nil
}

// PathID parses the named route variable as a non-negative id.
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := pkg.ParseID(raw)
	if err != nil {
		return 0, models.ValidationError("invalid %s %q", name, raw)
	}
	return id, nil
}

var routeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
}

// Unmatched answers requests that no route of root matched: 405 with an Allow
// header when the path is served under other methods, 404 otherwise.
// mux v1.8 drops the method mismatch of nested subrouters and reports it as
// not found, so the methods are probed again against the whole tree.
func Unmatched(root *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(root, r)
		if len(allowed) == 0 {
			pkg.WriteJSONMessage(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		pkg.WriteJSONMessage(w, fmt.Sprintf("method %s not allowed", r.Method), http.StatusMethodNotAllowed)
	})
}

func allowedMethods(root *mux.Router, r *http.Request) []string {
	var allowed []string
	for _, method := range routeMethods {
		if method == r.Method {
			continue
		}
		candidate := r.Clone(r.Context())
		candidate.Method = method
		var match mux.RouteMatch
		if root.Match(candidate, &match) && match.MatchErr == nil {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
