package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/iggi84/patients-health-tracker/internal/application/dto"
	"github.com/iggi84/patients-health-tracker/internal/application/usecase"
	"github.com/iggi84/patients-health-tracker/internal/domain/port"
	"github.com/iggi84/patients-health-tracker/internal/domain/service"
)

const (
	serviceName  = "vitals-risk-service"
	maxBodyBytes = 1 << 20
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PredictionHandler serves risk predictions over HTTP.
type PredictionHandler struct {
	predictRisk   *usecase.PredictRisk
	assessPatient *usecase.AssessPatient
	logger        *slog.Logger
}

// NewPredictionHandler creates a new prediction handler. assessPatient may be
// nil when no snapshot store is configured.
func NewPredictionHandler(predictRisk *usecase.PredictRisk, assessPatient *usecase.AssessPatient, logger *slog.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictRisk:   predictRisk,
		assessPatient: assessPatient,
		logger:        logger,
	}
}

// RegisterRoutes registers prediction endpoints on the provided ServeMux.
func (h *PredictionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/predictions", h.Predict)
	mux.HandleFunc("POST /api/v1/patients/{id}/assessments", h.AssessPatient)
}

// Predict scores the flat patient record in the request body. The optional
// patient_id query parameter tags the emitted events.
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var patientID uuid.UUID
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		var err error
		if patientID, err = uuid.Parse(raw); err != nil {
			writeError(w, http.StatusBadRequest, "invalid patient_id")
			return
		}
	}

	var record map[string]float64
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid patient record: "+err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusBadRequest, "invalid patient record: expected a JSON object")
		return
	}

	resp, err := h.predictRisk.Execute(r.Context(), dto.PredictRiskRequest{
		Record:    record,
		PatientID: patientID,
	})
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// AssessPatient scores the latest stored reading of the patient in the path.
func (h *PredictionHandler) AssessPatient(w http.ResponseWriter, r *http.Request) {
	if h.assessPatient == nil {
		writeError(w, http.StatusNotImplemented, "patient snapshots are not configured")
		return
	}

	patientID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid patient id")
		return
	}

	resp, err := h.assessPatient.Execute(r.Context(), dto.AssessPatientRequest{PatientID: patientID})
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PredictionHandler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var missing *service.MissingFeatureError
	switch {
	case errors.As(err, &missing):
		writeError(w, http.StatusUnprocessableEntity, missing.Error())
	case errors.Is(err, port.ErrSnapshotNotFound):
		writeError(w, http.StatusNotFound, port.ErrSnapshotNotFound.Error())
	default:
		h.logger.ErrorContext(r.Context(), "prediction failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}
