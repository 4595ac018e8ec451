// Package transform provides composable scenario edits. A transform takes a
// base scenario and returns an adjusted copy, enabling what-if comparisons and
// the goal solver without mutating plan data.
package transform

import (
	"fmt"

	"github.com/fiplan/fiplan/internal/domain"
)

// ScenarioTransform is one composable scenario edit.
type ScenarioTransform interface {
	// Apply returns a new scenario derived from base. The base is never
	// modified.
	Apply(base *domain.Scenario) (*domain.Scenario, error)

	// Name returns a short identifier for this transform (e.g. "cut_budget").
	Name() string

	// Description returns a human-readable description of the edit.
	Description() string

	// Validate checks the transform parameters against the base scenario
	// without applying it.
	Validate(base *domain.Scenario) error
}

// ApplyTransforms applies a sequence of transforms in order, each receiving
// the output of the previous one. With no transforms it returns a plain clone.
func ApplyTransforms(base *domain.Scenario, transforms []ScenarioTransform) (*domain.Scenario, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario cannot be nil")
	}
	if len(transforms) == 0 {
		return base.Clone(), nil
	}

	current := base
	for i, t := range transforms {
		if t == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := t.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", t.Name(), err)
		}
		next, err := t.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", t.Name(), err)
		}
		current = next
	}
	return current, nil
}

// TransformError describes a failed transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
