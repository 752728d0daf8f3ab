package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/iggi84/patients-health-tracker/internal/application/dto"
	"github.com/iggi84/patients-health-tracker/internal/application/usecase"
	"github.com/iggi84/patients-health-tracker/internal/domain/port"
	"github.com/iggi84/patients-health-tracker/internal/domain/service"
)

// Compile-time assertion that VitalsRiskHandler implements VitalsRiskServiceServer.
var _ VitalsRiskServiceServer = (*VitalsRiskHandler)(nil)

// VitalsRiskHandler implements the gRPC VitalsRiskServiceServer interface.
type VitalsRiskHandler struct {
	UnimplementedVitalsRiskServiceServer
	predictRisk   *usecase.PredictRisk
	assessPatient *usecase.AssessPatient
	logger        *slog.Logger
}

// NewVitalsRiskHandler creates a new gRPC handler. assessPatient may be nil
// when no snapshot store is configured.
func NewVitalsRiskHandler(
	predictRisk *usecase.PredictRisk,
	assessPatient *usecase.AssessPatient,
	logger *slog.Logger,
) *VitalsRiskHandler {
	return &VitalsRiskHandler{
		predictRisk:   predictRisk,
		assessPatient: assessPatient,
		logger:        logger,
	}
}

// Request/response message types.

// PredictRiskRequest carries one flat patient record.
type PredictRiskRequest struct {
	Record    map[string]float64 `json:"record"`
	PatientID string             `json:"patient_id,omitempty"`
}

// AssessPatientRequest names the patient whose latest reading is scored.
type AssessPatientRequest struct {
	PatientID string `json:"patient_id"`
}

// RiskFactorMsg represents one flagged vital sign.
type RiskFactorMsg struct {
	Factor      string `json:"factor"`
	Value       string `json:"value"`
	Severity    string `json:"severity"`
	Explanation string `json:"explanation"`
}

// ClassProbabilityMsg is one entry of the ordered probability list.
type ClassProbabilityMsg struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// RiskAssessmentResponse is the scored result.
type RiskAssessmentResponse struct {
	AssessmentID  string                `json:"assessment_id"`
	PatientID     string                `json:"patient_id,omitempty"`
	RiskLevel     string                `json:"risk_level"`
	Confidence    float64               `json:"confidence"`
	RiskFactors   []RiskFactorMsg       `json:"risk_factors"`
	Probabilities []ClassProbabilityMsg `json:"probabilities"`
	AssessedAt    string                `json:"assessed_at"`
}

// PredictRisk handles a record scoring request.
func (h *VitalsRiskHandler) PredictRisk(ctx context.Context, req *PredictRiskRequest) (*RiskAssessmentResponse, error) {
	if req == nil || req.Record == nil {
		return nil, status.Error(codes.InvalidArgument, "record is required")
	}

	var patientID uuid.UUID
	if req.PatientID != "" {
		var err error
		patientID, err = uuid.Parse(req.PatientID)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid patient_id: %v", err)
		}
	}

	result, err := h.predictRisk.Execute(ctx, dto.PredictRiskRequest{
		Record:    req.Record,
		PatientID: patientID,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "failed to predict risk", err)
	}

	return toMessage(result), nil
}

// AssessPatient handles a stored-snapshot scoring request.
func (h *VitalsRiskHandler) AssessPatient(ctx context.Context, req *AssessPatientRequest) (*RiskAssessmentResponse, error) {
	if h.assessPatient == nil {
		return nil, status.Error(codes.Unimplemented, "patient snapshots are not configured")
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid patient_id: %v", err)
	}

	h.logger.InfoContext(ctx, "assessing patient",
		slog.String("patient_id", patientID.String()),
	)

	result, err := h.assessPatient.Execute(ctx, dto.AssessPatientRequest{PatientID: patientID})
	if err != nil {
		return nil, h.toStatus(ctx, "failed to assess patient", err)
	}

	return toMessage(result), nil
}

func (h *VitalsRiskHandler) toStatus(ctx context.Context, msg string, err error) error {
	var missing *service.MissingFeatureError
	switch {
	case errors.As(err, &missing):
		return status.Error(codes.InvalidArgument, missing.Error())
	case errors.Is(err, port.ErrSnapshotNotFound):
		return status.Error(codes.NotFound, port.ErrSnapshotNotFound.Error())
	}

	h.logger.ErrorContext(ctx, msg, slog.String("error", err.Error()))
	return status.Error(codes.Internal, "internal error")
}

func toMessage(r dto.AssessmentResponse) *RiskAssessmentResponse {
	factors := make([]RiskFactorMsg, 0, len(r.RiskFactors))
	for _, f := range r.RiskFactors {
		factors = append(factors, RiskFactorMsg(f))
	}
	probabilities := make([]ClassProbabilityMsg, 0, len(r.Probabilities))
	for _, p := range r.Probabilities {
		probabilities = append(probabilities, ClassProbabilityMsg{Label: p.Label, Probability: p.Probability})
	}
	return &RiskAssessmentResponse{
		AssessmentID:  r.AssessmentID.String(),
		PatientID:     r.PatientID,
		RiskLevel:     r.RiskLevel,
		Confidence:    r.Confidence,
		RiskFactors:   factors,
		Probabilities: probabilities,
		AssessedAt:    r.AssessedAt.Format(time.RFC3339Nano),
	}
}
