package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/domain/repositories"
)

// requireText trims value and rejects it when blank
func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", domainerrors.BadRequest(field + " is required")
	}
	return v, nil
}

// patchText applies a supplied value to a required field
func patchText(dst *string, field string, value *string) error {
	if value == nil {
		return nil
	}
	v, err := requireText(field, *value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// patchOptional applies a supplied value to an optional field; blank clears it
func patchOptional(dst *null.String, value *string) {
	if value == nil {
		return
	}
	*dst = optionalString(value)
}

func optionalString(value *string) null.String {
	if value == nil {
		return null.String{}
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return null.String{}
	}
	return null.StringFrom(v)
}

func trimmedOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

// cleanList trims every entry and drops blanks, keeping order
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func boolOrDefault(value *bool, def bool) bool {
	if value == nil {
		return def
	}
	return *value
}

func validateOrder(order int) error {
	if order < 0 {
		return domainerrors.BadRequest("order must be a non-negative integer")
	}
	return nil
}

// claimOrder rejects a rank already held by a document other than exclude
func claimOrder(ctx context.Context, repo repositories.Orderable, order int, exclude uuid.UUID) error {
	if err := validateOrder(order); err != nil {
		return err
	}
	taken, err := repo.OrderTaken(ctx, order, exclude)
	if err != nil {
		return err
	}
	if taken {
		return domainerrors.Conflict(fmt.Sprintf("order %d is already in use", order))
	}
	return nil
}

// initialOrder returns the requested order, or the end of the list when none was supplied
func initialOrder(ctx context.Context, repo repositories.Orderable, requested *int) (int, error) {
	if requested != nil {
		if err := claimOrder(ctx, repo, *requested, uuid.Nil); err != nil {
			return 0, err
		}
		return *requested, nil
	}
	return repo.NextOrder(ctx)
}

// changeOrder applies a requested rank to an existing document; keeping its own rank always succeeds
func changeOrder(ctx context.Context, repo repositories.Orderable, id uuid.UUID, current int, requested *int) (int, error) {
	if requested == nil || *requested == current {
		return current, nil
	}
	if err := claimOrder(ctx, repo, *requested, id); err != nil {
		return 0, err
	}
	return *requested, nil
}

// reorder sets order to each ID's position in ids, in one transaction.
// Malformed or unknown IDs are skipped but still occupy their position.
func reorder(ctx context.Context, uow repositories.UnitOfWork, repo repositories.Orderable, ids []string) error {
	return uow.Do(ctx, func(txCtx context.Context) error {
		for index, raw := range ids {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				continue
			}
			if err := repo.UpdateOrder(txCtx, id, index); err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					continue
				}
				return err
			}
		}
		return nil
	})
}
