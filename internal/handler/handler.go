package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/eduforum-dev/eduforum/internal/errors"
	"github.com/eduforum-dev/eduforum/internal/logger"
	"github.com/eduforum-dev/eduforum/internal/markdown"
	"github.com/eduforum-dev/eduforum/internal/service"
)

// HealthChecker is what the readiness probe needs from storage.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	forum    service.ForumService
	renderer *markdown.Renderer
	health   HealthChecker
}

func New(forum service.ForumService, renderer *markdown.Renderer, health HealthChecker) *Handler {
	return &Handler{forum: forum, renderer: renderer, health: health}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), internal_errors.StatusCode(err))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadAndValidateRequestBody decodes the JSON body into body and checks its
// validate tags.
func LoadAndValidateRequestBody(r *http.Request, body any) error {
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	if err := validate.Struct(body); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "Required fields missing or invalid", StatusCode: http.StatusBadRequest}
	}
	return nil
}
