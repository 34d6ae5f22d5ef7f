package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mindpath/mindpath-backend/internal/adapter/postgres/tracker"
	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/pkg/ctxutil"
)

// ReconcileItem is one client-side counter state to merge.
// Count nil means the client has no explicit tally and defaults to 1.
type ReconcileItem struct {
	Tracker domain.TrackerType
	Date    time.Time
	Count   *int
}

// ReconcileResult reports the merge outcome for one item. The batch result
// always carries exactly one entry per input item, in input order.
type ReconcileResult struct {
	Tracker    domain.TrackerType
	Date       time.Time
	FinalCount int
	Action     domain.MergeAction
}

// ReconcileInput holds parameters for the batch sync operation.
type ReconcileInput struct {
	UserName  string
	UserEmail string
	Items     []ReconcileItem
}

// Reconcile merges a batch of client counters into the store under the
// max-wins rule: a stored count only grows. Items fail independently — a bad
// tracker type or a storage error marks that item failed and the batch moves
// on.
func (s *Service) Reconcile(ctx context.Context, input ReconcileInput) ([]ReconcileResult, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !id.Owns(input.UserName, input.UserEmail) {
		return nil, domain.ErrForbidden
	}

	results := make([]ReconcileResult, 0, len(input.Items))
	for _, item := range input.Items {
		results = append(results, s.reconcileOne(ctx, input.UserName, input.UserEmail, item))
	}

	s.log.InfoContext(ctx, "counters reconciled",
		slog.Int("items", len(input.Items)))

	return results, nil
}

func (s *Service) reconcileOne(ctx context.Context, userName, userEmail string, item ReconcileItem) ReconcileResult {
	result := ReconcileResult{Tracker: item.Tracker, Date: item.Date}

	if !item.Tracker.IsValid() || item.Date.IsZero() {
		result.Action = domain.MergeFailed
		return result
	}

	clientCount := 1
	if item.Count != nil {
		clientCount = *item.Count
	}
	if clientCount < 0 {
		result.Action = domain.MergeFailed
		return result
	}

	key := tracker.Key{
		UserName:     userName,
		UserEmail:    userEmail,
		Tracker:      item.Tracker,
		ActivityDate: item.Date,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.counters.GetByKey(txCtx, key)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			if _, err := s.counters.Insert(txCtx, key, clientCount); err != nil {
				return fmt.Errorf("insert counter: %w", err)
			}
			result.FinalCount = clientCount
			result.Action = domain.MergeCreated
			return nil
		case err != nil:
			return fmt.Errorf("get counter: %w", err)
		}

		// Max-wins: the stored count never decreases.
		if clientCount <= existing.Count {
			result.FinalCount = existing.Count
			result.Action = domain.MergeUnchanged
			return nil
		}

		if err := s.counters.SetCount(txCtx, existing.ID, clientCount); err != nil {
			return fmt.Errorf("set count: %w", err)
		}
		result.FinalCount = clientCount
		result.Action = domain.MergeUpdated
		return nil
	})
	if err != nil {
		s.log.WarnContext(ctx, "counter reconcile item failed",
			slog.String("tracker", item.Tracker.String()),
			slog.String("date", item.Date.Format("2006-01-02")),
			slog.String("error", err.Error()))
		result.FinalCount = 0
		result.Action = domain.MergeFailed
	}

	return result
}
