package actions

import (
	"context"
	"fmt"

	"github.com/lingohub/admind/internal/models"
)

// CreateSubscription creates a plan through the collaborator
func (a *Actions) CreateSubscription(ctx context.Context, payload SubscriptionPayload) (*models.Subscription, error) {
	created, err := a.svc.Subscriptions.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateSubscriptions(func(plans []models.Subscription) []models.Subscription {
		return append(plans, *created)
	})

	a.invalidate("subscriptions")
	a.audit(models.ActionCreateSubscription,
		fmt.Sprintf("Created plan %q (%.2f / %d days)", created.Name, created.Price, created.DurationDays))
	return created, nil
}

// UpdateSubscription edits a plan through the collaborator
func (a *Actions) UpdateSubscription(ctx context.Context, id string, payload SubscriptionPayload) (*models.Subscription, error) {
	updated, err := a.svc.Subscriptions.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateSubscriptions(func(plans []models.Subscription) []models.Subscription {
		for i := range plans {
			if plans[i].ID == updated.ID {
				plans[i] = *updated
				break
			}
		}
		return plans
	})

	a.invalidate("subscriptions")
	a.audit(models.ActionUpdateSubscription,
		fmt.Sprintf("Updated plan %q", updated.Name))
	return updated, nil
}

// DeleteSubscription removes a plan through the collaborator
func (a *Actions) DeleteSubscription(ctx context.Context, id string) error {
	if err := a.svc.Subscriptions.Delete(ctx, id); err != nil {
		return err
	}

	a.store.UpdateSubscriptions(func(plans []models.Subscription) []models.Subscription {
		kept := plans[:0:0]
		for _, p := range plans {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept
	})

	a.invalidate("subscriptions")
	a.audit(models.ActionDeleteSubscription, fmt.Sprintf("Deleted plan %s", id))
	return nil
}

// CreateUserSubscription assigns a plan to a user through the collaborator
func (a *Actions) CreateUserSubscription(ctx context.Context, payload UserSubscriptionPayload) (*models.UserSubscription, error) {
	created, err := a.svc.UserSubscriptions.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateUserSubscriptions(func(subs []models.UserSubscription) []models.UserSubscription {
		return append(subs, *created)
	})

	a.invalidate("user_subscriptions")
	a.audit(models.ActionAssignSubscription,
		fmt.Sprintf("Assigned plan %s to user %s", created.PlanID, created.UserID))
	return created, nil
}

// UpdateUserSubscription edits a user subscription through the collaborator
func (a *Actions) UpdateUserSubscription(ctx context.Context, id string, payload UserSubscriptionPayload) (*models.UserSubscription, error) {
	updated, err := a.svc.UserSubscriptions.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateUserSubscriptions(func(subs []models.UserSubscription) []models.UserSubscription {
		for i := range subs {
			if subs[i].ID == updated.ID {
				subs[i] = *updated
				break
			}
		}
		return subs
	})

	a.invalidate("user_subscriptions")
	a.audit(models.ActionUpdateUserSub,
		fmt.Sprintf("Updated subscription %s of user %s", updated.ID, updated.UserID))
	return updated, nil
}

// CreatePayment records a payment through the collaborator
func (a *Actions) CreatePayment(ctx context.Context, payload PaymentPayload) (*models.Payment, error) {
	created, err := a.svc.Payments.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdatePayments(func(payments []models.Payment) []models.Payment {
		return append([]models.Payment{*created}, payments...)
	})

	a.invalidate("payments")
	a.audit(models.ActionCreatePayment,
		fmt.Sprintf("Recorded payment of %.2f by user %s", created.Amount, created.UserID))
	return created, nil
}

// UpdatePayment edits a payment's status through the collaborator
func (a *Actions) UpdatePayment(ctx context.Context, id string, payload PaymentPayload) (*models.Payment, error) {
	updated, err := a.svc.Payments.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdatePayments(func(payments []models.Payment) []models.Payment {
		for i := range payments {
			if payments[i].ID == updated.ID {
				payments[i] = *updated
				break
			}
		}
		return payments
	})

	a.invalidate("payments")
	a.audit(models.ActionUpdatePayment,
		fmt.Sprintf("Updated payment %s to %s", updated.ID, updated.Status))
	return updated, nil
}

// CreateRefund issues a refund through the collaborator
func (a *Actions) CreateRefund(ctx context.Context, payload RefundPayload) (*models.Refund, error) {
	created, err := a.svc.Refunds.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateRefunds(func(refunds []models.Refund) []models.Refund {
		return append([]models.Refund{*created}, refunds...)
	})

	a.invalidate("payments")
	a.audit(models.ActionRefundPayment,
		fmt.Sprintf("Refunded %.2f on payment %s", created.Amount, created.PaymentID))
	return created, nil
}

// UpdateRefund edits a refund's status through the collaborator
func (a *Actions) UpdateRefund(ctx context.Context, id string, payload RefundPayload) (*models.Refund, error) {
	updated, err := a.svc.Refunds.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	a.store.UpdateRefunds(func(refunds []models.Refund) []models.Refund {
		for i := range refunds {
			if refunds[i].ID == updated.ID {
				refunds[i] = *updated
				break
			}
		}
		return refunds
	})

	a.invalidate("payments")
	a.audit(models.ActionUpdateRefund,
		fmt.Sprintf("Updated refund %s to %s", updated.ID, updated.Status))
	return updated, nil
}
