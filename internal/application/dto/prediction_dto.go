package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
)

// PredictRiskRequest is the input DTO for the PredictRisk use case.
// PatientID is optional and only tags the emitted events.
type PredictRiskRequest struct {
	Record    map[string]float64 `json:"record"`
	PatientID uuid.UUID          `json:"patient_id"`
}

// AssessPatientRequest is the input DTO for the AssessPatient use case.
type AssessPatientRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
}

// RiskFactorResponse is one flagged vital sign.
type RiskFactorResponse struct {
	Factor      string `json:"factor"`
	Value       string `json:"value"`
	Severity    string `json:"severity"`
	Explanation string `json:"explanation"`
}

// PredictionResponse is the wire form of a prediction. Its JSON shape is the
// public contract shared by the CLI, REST and gRPC surfaces.
type PredictionResponse struct {
	RiskLevel     string               `json:"riskLevel"`
	Confidence    float64              `json:"confidence"`
	RiskFactors   []RiskFactorResponse `json:"riskFactors"`
	Probabilities model.Probabilities  `json:"probabilities"`
}

// AssessmentResponse wraps a prediction with the assessment envelope.
type AssessmentResponse struct {
	PredictionResponse
	AssessmentID uuid.UUID  `json:"assessmentId"`
	PatientID    string     `json:"patientId,omitempty"`
	AssessedAt   time.Time  `json:"assessedAt"`
	RecordedAt   *time.Time `json:"recordedAt,omitempty"`
}

// FromPrediction maps a domain prediction to its response DTO.
func FromPrediction(p model.Prediction) PredictionResponse {
	factors := make([]RiskFactorResponse, 0, len(p.RiskFactors))
	for _, f := range p.RiskFactors {
		factors = append(factors, RiskFactorResponse{
			Factor:      f.Factor,
			Value:       f.Value,
			Severity:    f.Severity.String(),
			Explanation: f.Explanation,
		})
	}
	return PredictionResponse{
		RiskLevel:     p.RiskLevel,
		Confidence:    p.Confidence,
		RiskFactors:   factors,
		Probabilities: p.Probabilities,
	}
}

// FromAssessment maps the aggregate to the response DTO.
func FromAssessment(a *model.RiskAssessment) AssessmentResponse {
	resp := AssessmentResponse{
		PredictionResponse: FromPrediction(a.Prediction()),
		AssessmentID:       a.ID(),
		AssessedAt:         a.AssessedAt(),
	}
	if a.PatientID() != uuid.Nil {
		resp.PatientID = a.PatientID().String()
	}
	return resp
}
