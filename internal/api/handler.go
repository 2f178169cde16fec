package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/api/middleware"
	"github.com/Forgingalex/rei/internal/auditor"
	"github.com/Forgingalex/rei/internal/council"
	"github.com/Forgingalex/rei/internal/memory"
	"github.com/Forgingalex/rei/internal/models"
)

type Handler struct {
	council *council.Council
	auditor *auditor.Auditor
	store   memory.Store
	logger  *zerolog.Logger
}

func NewHandler(council *council.Council, auditor *auditor.Auditor, store memory.Store, logger *zerolog.Logger) *Handler {
	return &Handler{
		council: council,
		auditor: auditor,
		store:   store,
		logger:  logger,
	}
}

// POST /api/v1/deliberate
// Body: DeliberateRequest
// Returns: models.DeliberationVerdict
func (h *Handler) Deliberate(req *restful.Request, resp *restful.Response) {
	var delibRequest DeliberateRequest
	if err := req.ReadEntity(&delibRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := delibRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	requestID := delibRequest.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	h.logger.Info().
		Str("request_id", requestID).
		Int("prompt_length", len(delibRequest.Prompt)).
		Msg("Start deliberation")

	ctx := req.Request.Context()
	verdict, err := h.council.Deliberate(ctx, delibRequest.Prompt)
	if err != nil {
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("Deliberation failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Str("request_id", requestID).
		Str("verdict", string(verdict.Audit.Verdict)).
		Int("trust_score", verdict.TrustScore).
		Msg("Deliberation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, verdict)
}

// POST /api/v1/audit
// Body: AuditRequest
// Returns: models.AuditResult
func (h *Handler) Audit(req *restful.Request, resp *restful.Response) {
	var auditRequest AuditRequest
	if err := req.ReadEntity(&auditRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := auditRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	result := h.auditor.ScoreResponse(auditRequest.Response)

	h.logger.Info().
		Int("score", result.Score).
		Str("verdict", string(result.Verdict)).
		Msg("Audit complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/boundaries
func (h *Handler) AddBoundary(req *restful.Request, resp *restful.Response) {
	var addRequest AddBoundaryRequest
	if err := req.ReadEntity(&addRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := addRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	id, err := h.store.AddBoundary(ctx, addRequest.Text, addRequest.Context, models.Severity(addRequest.Severity))
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to store boundary")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, AddBoundaryResponse{ID: id})
}

// GET /api/v1/boundaries
func (h *Handler) ListBoundaries(req *restful.Request, resp *restful.Response) {
	ctx := req.Request.Context()
	boundaries, err := h.store.AllBoundaries(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list boundaries")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, BoundariesResponse{Boundaries: boundaries})
}

// DELETE /api/v1/boundaries/{boundary_id}
func (h *Handler) RemoveBoundary(req *restful.Request, resp *restful.Response) {
	boundaryID := req.PathParameter("boundary_id")

	ctx := req.Request.Context()
	if err := h.store.RemoveBoundary(ctx, boundaryID); err != nil {
		if errors.Is(err, memory.ErrBoundaryNotFound) {
			middleware.HandleError(resp, err, http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Str("boundary_id", boundaryID).Msg("Failed to remove boundary")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/boundaries/stats
func (h *Handler) BoundaryStats(req *restful.Request, resp *restful.Response) {
	ctx := req.Request.Context()
	stats, err := h.store.Stats(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read boundary stats")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, stats)
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
