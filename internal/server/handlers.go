package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	apperrors "tasks-api/internal/errors"
	"tasks-api/internal/validation"
)

const (
	maxBodyBytes = 100 << 10

	msgTaskNotFound       = "The task does not exist"
	msgTaskIDNotFound     = "The task with the provided ID does not exist."
	msgTaskIDNotFoundTypo = "The task with the provided ID does not exists"
)

// failure holds the texts one operation answers with.
type failure struct {
	notFound string
	invalid  string
}

func (s *Server) nameTooShort(terminator string) string {
	return fmt.Sprintf("The name should be at least %d chars long%s", s.config.Validation.NameMinLength, terminator)
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.service.ListTasks(r.Context())
	if err != nil {
		s.writeError(w, r, err, failure{})
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	f := failure{notFound: msgTaskNotFound}
	id, ok := parseTaskID(r.PathValue("id"))
	if !ok {
		writeText(w, http.StatusNotFound, f.notFound)
		return
	}
	task, err := s.service.GetTask(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, f)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	f := failure{invalid: s.nameTooShort("!")}
	candidate, ok := s.readCandidate(w, r)
	if !ok {
		return
	}
	task, err := s.service.CreateTask(r.Context(), candidate)
	if err != nil {
		s.writeError(w, r, err, f)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) replaceTask(w http.ResponseWriter, r *http.Request) {
	f := failure{notFound: msgTaskIDNotFound, invalid: s.nameTooShort(".")}
	id, ok := parseTaskID(r.PathValue("id"))
	if !ok {
		writeText(w, http.StatusNotFound, f.notFound)
		return
	}
	candidate, ok := s.readCandidate(w, r)
	if !ok {
		return
	}
	task, err := s.service.ReplaceTask(r.Context(), id, candidate)
	if err != nil {
		s.writeError(w, r, err, f)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) patchTask(w http.ResponseWriter, r *http.Request) {
	f := failure{notFound: msgTaskIDNotFoundTypo, invalid: s.nameTooShort("!")}
	id, ok := parseTaskID(r.PathValue("id"))
	if !ok {
		writeText(w, http.StatusNotFound, f.notFound)
		return
	}
	candidate, ok := s.readCandidate(w, r)
	if !ok {
		return
	}
	task, err := s.service.PatchTask(r.Context(), id, candidate)
	if err != nil {
		s.writeError(w, r, err, f)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	f := failure{notFound: msgTaskIDNotFound}
	id, ok := parseTaskID(r.PathValue("id"))
	if !ok {
		writeText(w, http.StatusNotFound, f.notFound)
		return
	}
	task, err := s.service.DeleteTask(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, f)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// readCandidate reads the request body. Bodies that are not JSON objects
// come back as a nil candidate and fail validation later. Only an oversized
// body is answered here.
func (s *Server) readCandidate(w http.ResponseWriter, r *http.Request) (validation.Candidate, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeText(w, http.StatusRequestEntityTooLarge, "request entity too large")
			return nil, false
		}
		s.logger.Debug("reading request body", "err", err, "request_id", requestIDFrom(r.Context()))
		return nil, true
	}
	return validation.DecodeCandidate(body), true
}

// writeError maps service errors onto the operation's status and text.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, f failure) {
	switch {
	case apperrors.IsNotFound(err) && f.notFound != "":
		writeText(w, http.StatusNotFound, f.notFound)
	case apperrors.IsValidation(err) && f.invalid != "":
		reason := err.Error()
		if ve, ok := validation.AsValidationError(err); ok {
			reason = ve.GetUserFriendlyMessage()
		}
		s.logger.Debug("validation failed", "reason", reason, "request_id", requestIDFrom(r.Context()))
		writeText(w, http.StatusBadRequest, f.invalid)
	default:
		if apperrors.ShouldLogError(err) {
			fields := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"code", apperrors.GetErrorCode(err),
				"err", err,
				"request_id", requestIDFrom(r.Context()),
			}
			if appErr, ok := apperrors.AsAppError(err); ok {
				if op, ok := appErr.GetContext("operation"); ok {
					fields = append(fields, "operation", op)
				}
			}
			s.logger.Error("request failed", fields...)
		}
		writeText(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
