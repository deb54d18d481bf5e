// Package models defines the wire-level domain types shared across the
// investigation pipeline: anomaly alerts, metric specs, and the request
// structs consumed by the service layer.
package models

import (
	"errors"
	"fmt"
	"time"
)

// AnomalyAlert is the structured anomaly notification that initiates one
// investigation. Produced by an external detector; immutable input.
type AnomalyAlert struct {
	DatasetID     string     `json:"dataset_id"`
	Metric        MetricSpec `json:"metric_spec"`
	AnomalyType   string     `json:"anomaly_type"`
	ExpectedValue float64    `json:"expected_value"`
	ActualValue   float64    `json:"actual_value"`
	DeviationPct  float64    `json:"deviation_pct"`
	AnomalyDate   string     `json:"anomaly_date"`
	Severity      string     `json:"severity"`

	// Optional provenance of the upstream detector.
	SourceSystem  string `json:"source_system,omitempty"`
	SourceAlertID string `json:"source_alert_id,omitempty"`
	SourceURL     string `json:"source_url,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks the alert is well-formed enough to start an investigation.
func (a AnomalyAlert) Validate() error {
	if a.DatasetID == "" {
		return errors.New("alert: dataset_id is required")
	}
	if a.AnomalyType == "" {
		return errors.New("alert: anomaly_type is required")
	}
	if a.AnomalyDate != "" {
		if _, err := time.Parse("2006-01-02", a.AnomalyDate); err != nil {
			return fmt.Errorf("alert: anomaly_date must be YYYY-MM-DD: %w", err)
		}
	}
	if err := a.Metric.Validate(); err != nil {
		return err
	}
	return nil
}

// Summary renders a one-line description of the anomaly for prompts and
// the feedback log.
func (a AnomalyAlert) Summary() string {
	return fmt.Sprintf("%s anomaly on %s (%s): expected %g, got %g (%.1f%% deviation) on %s",
		a.AnomalyType, a.DatasetID, a.Metric.DisplayName,
		a.ExpectedValue, a.ActualValue, a.DeviationPct, a.AnomalyDate)
}
