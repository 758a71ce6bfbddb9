package payment

import (
	"context"
	"fmt"
	"math/big"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/logging"
	"github.com/JuinSoft/Celestium/registry/model"
)

// ErrInsufficientFunds is returned when a leg cannot be executed because the
// buyer's balance does not cover it.
type ErrInsufficientFunds struct {
	Holder   string
	Required *big.Int
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf(
		"Insufficient funds for %s: required %s", e.Holder, e.Required)
}

// Split computes the seller and royalty amounts for a payment. The royalty
// amount is floor(amount * royaltyPercentage / 100); integer division
// truncates, so any rounding remainder accrues to the seller.
func Split(
	amount *big.Int,
	royaltyPercentage int8,
) (*big.Int, *big.Int) {
	royaltyAmount := new(big.Int).Div(
		new(big.Int).Mul(amount, big.NewInt(int64(royaltyPercentage))),
		big.NewInt(100))
	sellerAmount := new(big.Int).Sub(amount, royaltyAmount)

	return sellerAmount, royaltyAmount
}

// Settle executes the royalty-aware payment of amount from the buyer: a
// seller leg for the price net of royalty, and a royalty leg to the creator
// if the royalty amount is positive. Legs are executed as two separate
// transfers even when the seller and the creator are the same principal. The
// caller is expected to run Settle inside the transaction of the enclosing
// operation so that a failed leg discards any previously applied one.
func Settle(
	ctx context.Context,
	asset string,
	buyer string,
	seller string,
	creator string,
	amount *big.Int,
	royaltyPercentage int8,
) error {
	sellerAmount, royaltyAmount := Split(amount, royaltyPercentage)

	logging.Logf(ctx,
		"Payment: asset=%s buyer=%s seller=%s creator=%s "+
			"seller_amount=%s royalty_amount=%s",
		asset, buyer, seller, creator, sellerAmount, royaltyAmount)

	err := executeLeg(ctx, asset, buyer, seller, sellerAmount, model.OpKdSeller)
	if err != nil {
		return errors.Trace(err)
	}

	if royaltyAmount.Sign() > 0 {
		err := executeLeg(ctx,
			asset, buyer, creator, royaltyAmount, model.OpKdRoyalty)
		if err != nil {
			return errors.Trace(err)
		}
	}

	return nil
}

// executeLeg moves value from the buyer's balance to the destination's
// balance and records the matching operation.
func executeLeg(
	ctx context.Context,
	asset string,
	buyer string,
	destination string,
	amount *big.Int,
	kind model.OpKind,
) error {
	source, err := model.LoadOrCreateBalanceByHolder(ctx, buyer)
	if err != nil {
		return errors.Trace(err)
	}

	if (*big.Int)(&source.Value).Cmp(amount) < 0 {
		return errors.Trace(ErrInsufficientFunds{
			Holder:   buyer,
			Required: amount,
		})
	}

	(*big.Int)(&source.Value).Sub((*big.Int)(&source.Value), amount)
	if err := source.Save(ctx); err != nil {
		return errors.Trace(err)
	}

	// The destination balance is reloaded after the debit so that transfers
	// from a principal to itself observe the updated value.
	target, err := model.LoadOrCreateBalanceByHolder(ctx, destination)
	if err != nil {
		return errors.Trace(err)
	}

	(*big.Int)(&target.Value).Add((*big.Int)(&target.Value), amount)
	if err := target.Save(ctx); err != nil {
		return errors.Trace(err)
	}

	if _, err := model.CreateOperation(ctx,
		&buyer, destination, model.Amount(*amount), &asset, kind); err != nil {
		return errors.Trace(err)
	}

	return nil
}
