package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

var (
	// ErrReviewNotReady is returned when items are reviewed before washing is completed.
	ErrReviewNotReady = errors.New("quality review requires a completed wash")
	// ErrReviewNotAuthorized is returned when the reviewer does not own the order.
	ErrReviewNotAuthorized = errors.New("reviewer is not authorized for this order")
)

// ReviewAuthorizer decides whether the given reviewer may record quality
// verdicts on the order. Injected so the HTTP layer and back-office tooling
// can apply different ownership rules.
type ReviewAuthorizer func(o *order.Order, reviewer string) error

// CustomerReviewAuthorizer permits only the order's own customer, identified
// by email, to review item quality.
func CustomerReviewAuthorizer(o *order.Order, reviewer string) error {
	if o.Customer().Email() != reviewer {
		return ErrReviewNotAuthorized
	}
	return nil
}

// ReviewItemQualityCommandHandler orchestrates per-item quality review.
// The item itself enforces the one-shot pending -> approved/rewash lifecycle;
// the handler adds the workflow gate (no review before wash-completed) and the
// ownership check.
type ReviewItemQualityCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingPolicy
	authorize  ReviewAuthorizer
}

// NewReviewItemQualityCommandHandler creates a handler for quality review operations.
func NewReviewItemQualityCommandHandler(
	uowFactory OrderUoWFactory,
	pricing services.PricingPolicy,
	authorize ReviewAuthorizer,
) ReviewItemQualityCommandHandler {
	return ReviewItemQualityCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		authorize:  authorize,
	}
}

// Handle processes the quality review command.
// Returns ErrReviewNotReady before wash completion, ErrReviewNotAuthorized
// when the reviewer fails the ownership check, and the order's quality errors
// when the verdict cannot be applied.
func (h ReviewItemQualityCommandHandler) Handle(ctx context.Context, cmd ReviewItemQualityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := loadOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.authorize(aggregate, cmd.Reviewer()); err != nil {
		return err
	}

	if aggregate.Status().Step() < order.WashCompleted.Step() {
		return ErrReviewNotReady
	}

	now := time.Now().UTC()
	switch cmd.Verdict() {
	case order.QualityApproved:
		err = aggregate.ApproveItem(cmd.ItemIndex(), now)
	case order.QualityRewash:
		err = aggregate.RequestItemRewash(cmd.ItemIndex(), cmd.Reason(), now)
	default:
		err = errs.NewValueIsInvalidError("verdict")
	}
	if err != nil {
		return err
	}

	if err = refreshOrderTotal(aggregate, h.pricing); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
