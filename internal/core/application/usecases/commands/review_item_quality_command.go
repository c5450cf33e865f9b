package commands

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrReviewItemQualityCommandIsNotConstructed = errors.New(
		"ReviewItemQualityCommand must be created via NewReviewItemQualityCommand constructor",
	)
	ErrReviewerIsRequired = errors.New("reviewer is required")
)

// ReviewItemQualityCommand represents a quality verdict on a single order
// item: the item is either approved or sent back for a rewash with a reason.
//
// Example:
//
//	cmd, err := NewReviewItemQualityCommand(orderID, 1, "rewash", "Stain remains", "john@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid review: %w", err)
//	}
//
//	handler := NewReviewItemQualityCommandHandler(uowFactory, pricing, CustomerReviewAuthorizer)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrReviewNotReady):
//	    // items can only be reviewed once washing is done
//	case errors.Is(err, order.ErrInvalidQualityState):
//	    // the item already received a verdict
//	}
type ReviewItemQualityCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemIndex int
	verdict   order.QualityStatus
	reason    string
	reviewer  string

	guard guard.ConstructorGuard
}

// NewReviewItemQualityCommand creates a command to record a quality verdict.
// The verdict is given as its string form, "approved" or "rewash"; "pending"
// is not a verdict and is rejected. A rewash verdict requires a reason, which
// the order aggregate enforces. The reviewer identifies who is reviewing,
// matched against the order by the handler's authorizer.
func NewReviewItemQualityCommand(
	orderID kernel.UUID,
	itemIndex int,
	verdict string,
	reason string,
	reviewer string,
) (ReviewItemQualityCommand, error) {
	command := ReviewItemQualityCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemIndex(itemIndex),
		command.setVerdict(verdict),
		command.setReviewer(reviewer),
	); err != nil {
		return ReviewItemQualityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReviewItemQualityCommandIsNotConstructed if validation fails.
func (c ReviewItemQualityCommand) Validate() error {
	return c.guard.Validate(ErrReviewItemQualityCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose item is reviewed.
func (c ReviewItemQualityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemIndex returns the zero-based index of the reviewed item.
func (c ReviewItemQualityCommand) ItemIndex() int {
	return c.itemIndex
}

// Verdict returns the parsed quality verdict.
func (c ReviewItemQualityCommand) Verdict() order.QualityStatus {
	return c.verdict
}

// Reason returns the rewash reason, empty for approvals.
func (c ReviewItemQualityCommand) Reason() string {
	return c.reason
}

// Reviewer returns the identity of the person recording the verdict.
func (c ReviewItemQualityCommand) Reviewer() string {
	return c.reviewer
}

func (c *ReviewItemQualityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReviewItemQualityCommand) setItemIndex(itemIndex int) error {
	if itemIndex < 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemIndex", fmt.Errorf("%d is negative", itemIndex))
	}

	c.itemIndex = itemIndex
	return nil
}

func (c *ReviewItemQualityCommand) setVerdict(verdict string) error {
	parsed, err := order.QualityStatusFromString(verdict)
	if err != nil {
		return err
	}
	if parsed == order.QualityPending {
		return errs.NewValueIsInvalidErrorWithCause("verdict", errors.New("pending is not a verdict"))
	}

	c.verdict = parsed
	return nil
}

func (c *ReviewItemQualityCommand) setReviewer(reviewer string) error {
	if reviewer == "" {
		return ErrReviewerIsRequired
	}

	c.reviewer = reviewer
	return nil
}
