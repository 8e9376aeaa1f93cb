// Package handler exposes the assessment service over HTTP.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"conforma/internal/assessment/models"
	"conforma/internal/assessment/service"
	id "conforma/pkg/domain"
	"conforma/pkg/platform/httputil"
	"conforma/pkg/requestcontext"
)

type Handler struct {
	svc    *service.Service
	logger *slog.Logger
}

func New(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register mounts the assessment routes on the router. Authentication
// middleware is applied by the caller; these handlers assume the auditor
// identity is already in the request context.
func (h *Handler) Register(r chi.Router) {
	r.Get("/frameworks", h.ListFrameworks)
	r.Get("/frameworks/{frameworkID}/questions", h.ListQuestions)

	r.Post("/sessions", h.StartSession)
	r.Get("/sessions/{sessionID}", h.GetSession)
	r.Put("/sessions/{sessionID}/responses/{questionID}", h.RecordResponse)
	r.Get("/sessions/{sessionID}/progress", h.Progress)
	r.Post("/sessions/{sessionID}/finalize", h.Finalize)

	r.Get("/results/{resultID}", h.GetResult)
}

func (h *Handler) ListFrameworks(w http.ResponseWriter, r *http.Request) {
	frameworks := h.svc.ListFrameworks(r.Context())
	httputil.WriteJSON(w, http.StatusOK, frameworkListResponse{Frameworks: frameworks})
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	frameworkID, err := id.ParseFrameworkID(chi.URLParam(r, "frameworkID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	questions := h.svc.ListQuestions(r.Context(), frameworkID)
	httputil.WriteJSON(w, http.StatusOK, questionListResponse{
		FrameworkID: frameworkID.String(),
		Questions:   questions,
	})
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[startSessionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	frameworkID, err := id.ParseFrameworkID(req.FrameworkID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	session, err := h.svc.StartSession(ctx, frameworkID)
	if err != nil {
		h.logError(r, "failed to start session", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, session)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := id.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	session, err := h.svc.GetSession(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, session)
}

// RecordResponse is a PUT: answering the same question again replaces
// the previous answer.
func (h *Handler) RecordResponse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, err := id.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	questionID, err := id.ParseQuestionID(chi.URLParam(r, "questionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[recordResponseRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	status, err := models.ParseResponseStatus(req.Status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	err = h.svc.RecordResponse(ctx, sessionID, models.AuditResponse{
		QuestionID: questionID,
		Status:     status,
		Comment:    req.Comment,
		Evidence:   req.Evidence,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	sessionID, err := id.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	progress, err := h.svc.Progress(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, progress)
}

func (h *Handler) Finalize(w http.ResponseWriter, r *http.Request) {
	sessionID, err := id.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.svc.Finalize(r.Context(), sessionID)
	if err != nil {
		h.logError(r, "failed to finalize session", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, result)
}

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	resultID, err := id.ParseResultID(chi.URLParam(r, "resultID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.svc.GetResult(r.Context(), resultID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	if h.logger == nil {
		return
	}
	ctx := r.Context()
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"path", r.URL.Path,
		"error", err,
	)
}
