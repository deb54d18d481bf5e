package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/datasleuth/sleuth/ent"
	"github.com/datasleuth/sleuth/ent/trainingsignal"
	"github.com/datasleuth/sleuth/pkg/models"
)

// SignalService persists the quality validator's training signals.
// Implements validator.SignalWriter.
type SignalService struct {
	client *ent.Client
}

// NewSignalService creates a new SignalService
func NewSignalService(client *ent.Client) *SignalService {
	return &SignalService{client: client}
}

// WriteSignal records one judge assessment.
func (s *SignalService) WriteSignal(ctx context.Context, req models.CreateTrainingSignalRequest) error {
	if req.InvestigationID == "" {
		return NewValidationError("investigation_id", "required")
	}
	switch req.SignalType {
	case string(trainingsignal.SignalTypeInterpretation), string(trainingsignal.SignalTypeSynthesis):
	default:
		return NewValidationError("signal_type", fmt.Sprintf("unknown signal type %q", req.SignalType))
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	create := s.client.TrainingSignal.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetInvestigationID(req.InvestigationID).
		SetSignalType(trainingsignal.SignalType(req.SignalType)).
		SetCausalDepth(req.CausalDepth).
		SetSpecificity(req.Specificity).
		SetActionability(req.Actionability).
		SetCompositeScore(req.CompositeScore).
		SetPassed(req.Passed).
		SetLowestDimension(req.LowestDimension)
	if req.HypothesisID != nil {
		create = create.SetHypothesisID(*req.HypothesisID)
	}
	if req.ImprovementSuggestion != "" {
		create = create.SetImprovementSuggestion(req.ImprovementSuggestion)
	}

	if err := create.Exec(writeCtx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: investigation %s", ErrNotFound, req.InvestigationID)
		}
		return fmt.Errorf("failed to write training signal: %w", err)
	}
	return nil
}

// ListByInvestigation returns all signals recorded for one investigation,
// oldest first.
func (s *SignalService) ListByInvestigation(ctx context.Context, investigationID string) ([]*ent.TrainingSignal, error) {
	signals, err := s.client.TrainingSignal.Query().
		Where(trainingsignal.InvestigationIDEQ(investigationID)).
		Order(ent.Asc(trainingsignal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list training signals: %w", err)
	}
	return signals, nil
}
