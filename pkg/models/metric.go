package models

import (
	"errors"
	"fmt"
)

// MetricType identifies which variant of a MetricSpec is populated.
type MetricType string

const (
	MetricTypeColumn        MetricType = "column"
	MetricTypeSQLExpression MetricType = "sql_expression"
	MetricTypeDBTMetric     MetricType = "dbt_metric"
	MetricTypeDescription   MetricType = "description"
)

// MetricSpec describes what is anomalous on a dataset. It is a tagged
// variant: exactly one of the variant field groups is populated, selected
// by MetricType. Immutable after construction.
type MetricSpec struct {
	MetricType  MetricType `json:"metric_type"`
	DisplayName string     `json:"display_name"`

	// MetricTypeColumn
	Column string `json:"column,omitempty"`

	// MetricTypeSQLExpression
	Expression        string   `json:"expression,omitempty"`
	ExpressionColumns []string `json:"expression_columns,omitempty"`

	// MetricTypeDBTMetric
	MetricName string `json:"metric_name,omitempty"`
	SourceURL  string `json:"source_url,omitempty"`

	// MetricTypeDescription
	Description string `json:"description,omitempty"`
}

// MetricFromColumn builds a column-variant MetricSpec.
func MetricFromColumn(column string) MetricSpec {
	return MetricSpec{
		MetricType:  MetricTypeColumn,
		DisplayName: column,
		Column:      column,
	}
}

// MetricFromExpression builds a SQL-expression-variant MetricSpec.
// referencedColumns lists the columns the expression reads.
func MetricFromExpression(displayName, expression string, referencedColumns ...string) MetricSpec {
	return MetricSpec{
		MetricType:        MetricTypeSQLExpression,
		DisplayName:       displayName,
		Expression:        expression,
		ExpressionColumns: referencedColumns,
	}
}

// MetricFromDBTMetric builds a dbt/metric-layer-variant MetricSpec.
// sourceURL may be empty.
func MetricFromDBTMetric(metricName, sourceURL string) MetricSpec {
	return MetricSpec{
		MetricType:  MetricTypeDBTMetric,
		DisplayName: metricName,
		MetricName:  metricName,
		SourceURL:   sourceURL,
	}
}

// MetricFromDescription builds a free-text-variant MetricSpec.
func MetricFromDescription(description string) MetricSpec {
	return MetricSpec{
		MetricType:  MetricTypeDescription,
		DisplayName: description,
		Description: description,
	}
}

// Validate checks that exactly the fields of the tagged variant are set.
func (m MetricSpec) Validate() error {
	if m.DisplayName == "" {
		return errors.New("metric spec: display_name is required")
	}
	switch m.MetricType {
	case MetricTypeColumn:
		if m.Column == "" {
			return errors.New("metric spec: column variant requires a column name")
		}
	case MetricTypeSQLExpression:
		if m.Expression == "" {
			return errors.New("metric spec: sql_expression variant requires an expression")
		}
	case MetricTypeDBTMetric:
		if m.MetricName == "" {
			return errors.New("metric spec: dbt_metric variant requires a metric name")
		}
	case MetricTypeDescription:
		if m.Description == "" {
			return errors.New("metric spec: description variant requires a description")
		}
	default:
		return fmt.Errorf("metric spec: unknown metric_type %q", m.MetricType)
	}
	return nil
}
