// Package store provides access to the raw prospect records that
// reconciliation consumes. Two implementations exist: an in-memory store for
// tests and local development, and a postgres store for deployments.
package store

import (
	"context"

	"instructhub/internal/casebook/models"
	dErrors "instructhub/pkg/domain-errors"
)

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

// ErrNotFound is returned when no record matches the given key.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "record not found")

// ProspectStore is the read side of the source data plus the one mutation
// collaborator actions need: recording an identity-check outcome.
type ProspectStore interface {
	// Prospects returns the current source snapshot.
	Prospects(ctx context.Context) ([]models.Prospect, error)

	// SetEIDResult records the status and overall result of every identity
	// verification held against the instruction. Returns ErrNotFound when the
	// instruction has no verification records.
	SetEIDResult(ctx context.Context, instructionRef, status, result string) error
}
