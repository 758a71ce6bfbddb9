package endpoint

import (
	"context"
	"math/big"
	"strconv"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/registry/model"
)

// ValidateAssetID validates an asset id.
func ValidateAssetID(
	ctx context.Context,
	id string,
) (*string, error) {
	if !model.AssetIDRegexp.MatchString(id) {
		return nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "id_invalid",
			"The asset id you provided is invalid: %s. Asset ids have the "+
				"form asset_<sequence>.",
			id,
		))
	}

	return &id, nil
}

// ValidatePrincipal validates a principal username.
func ValidatePrincipal(
	ctx context.Context,
	principal string,
) (*string, error) {
	if !model.UsernameRegexp.MatchString(principal) {
		return nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "principal_invalid",
			"The principal you provided is invalid: %s. Principals can use "+
				"alphanumeric lowercased and `-_.` characters only.",
			principal,
		))
	}

	return &principal, nil
}

// ValidateRoyalty validates a royalty percentage. Royalties are integer
// percentages in [0,100].
func ValidateRoyalty(
	ctx context.Context,
	royalty string,
) (*int8, error) {
	r, err := strconv.ParseInt(royalty, 10, 8)
	if err != nil ||
		(int8(r) < model.AssetMinRoyalty || int8(r) > model.AssetMaxRoyalty) {
		return nil, errors.Trace(errors.NewUserErrorf(err,
			400, "royalty_invalid",
			"The royalty percentage you provided is invalid: %s. Royalty "+
				"percentages must be integers between %d and %d.",
			royalty, model.AssetMinRoyalty, model.AssetMaxRoyalty,
		))
	}
	res := int8(r)

	return &res, nil
}

// ValidateAmount validates the amount of a payment. Amounts must be in
// [0, 2^128).
func ValidateAmount(
	ctx context.Context,
	amount string,
) (*big.Int, error) {
	var a big.Int
	_, success := a.SetString(amount, 10)
	if !success ||
		a.Cmp(new(big.Int)) < 0 ||
		a.Cmp(model.MaxAmount) >= 0 {
		return nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "amount_invalid",
			"The amount you provided is invalid: %s. Amounts must be "+
				"integers between 0 and 2^128.",
			amount,
		))
	}

	return &a, nil
}

// ValidatePrice validates a price. Prices are signed: negative values are
// accepted and stored as-is (the transfer path makes them unpayable in
// practice since payment amounts are non-negative and always satisfy them).
func ValidatePrice(
	ctx context.Context,
	price string,
) (*big.Int, error) {
	var p big.Int
	_, success := p.SetString(price, 10)
	if !success ||
		p.CmpAbs(model.MaxAmount) >= 0 {
		return nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "price_invalid",
			"The price you provided is invalid: %s. Prices must be "+
				"integers between -2^128 and 2^128.",
			price,
		))
	}

	return &p, nil
}

// ValidateLimit validates a list limit, defaulting to 100.
func ValidateLimit(
	ctx context.Context,
	limit string,
) (*int64, error) {
	if limit == "" {
		l := int64(100)
		return &l, nil
	}
	l, err := strconv.ParseInt(limit, 10, 64)
	if err != nil || l < 0 {
		return nil, errors.Trace(errors.NewUserErrorf(err,
			400, "limit_invalid",
			"The limit you provided is invalid: %s. Limits must be "+
				"non-negative integers.",
			limit,
		))
	}

	return &l, nil
}

// ValidateOffset validates a list offset, defaulting to 0.
func ValidateOffset(
	ctx context.Context,
	offset string,
) (*int64, error) {
	if offset == "" {
		o := int64(0)
		return &o, nil
	}
	o, err := strconv.ParseInt(offset, 10, 64)
	if err != nil || o < 0 {
		return nil, errors.Trace(errors.NewUserErrorf(err,
			400, "offset_invalid",
			"The offset you provided is invalid: %s. Offsets must be "+
				"non-negative integers.",
			offset,
		))
	}

	return &o, nil
}
