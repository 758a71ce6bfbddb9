package model

import (
	"database/sql/driver"
	"math/big"

	"github.com/JuinSoft/Celestium/lib/errors"
)

// MaxAmount is the maximum value for an amount or price (2^128).
var MaxAmount = new(big.Int).Exp(
	big.NewInt(2), big.NewInt(128), nil)

// Amount extends big.Int to implement sql.Scanner and driver.Valuer.
type Amount big.Int

// Scan implements sql.Scanner.
func (b *Amount) Scan(src interface{}) error {
	switch src := src.(type) {
	case int64:
		(*big.Int)(b).SetInt64(src)
	case []byte:
		if _, success := (*big.Int)(b).SetString(string(src), 10); !success {
			return errors.Newf("Impossible to set Amount with string: %q", src)
		}
	case string:
		if _, success := (*big.Int)(b).SetString(src, 10); !success {
			return errors.Newf("Impossible to set Amount with string: %q", src)
		}
	default:
		return errors.Newf("Incompatible type for Amount with value: %q", src)
	}

	return nil
}

// Value implements driver.Valuer.
func (b Amount) Value() (value driver.Value, err error) {
	return (*big.Int)(&b).String(), nil
}

// OpKind is the kind of an operation (the leg of a value transfer it
// represents).
type OpKind string

const (
	// OpKdSeller is the payment leg credited to the seller of an asset.
	OpKdSeller OpKind = "seller"
	// OpKdRoyalty is the royalty leg credited to the creator of an asset.
	OpKdRoyalty OpKind = "royalty"
	// OpKdFund is a funding operation crediting a balance from the external
	// value rail.
	OpKdFund OpKind = "fund"
)

// Value implements driver.Valuer.
func (k OpKind) Value() (value driver.Value, err error) {
	return string(k), nil
}

// Scan implements sql.Scanner.
func (k *OpKind) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		*k = OpKind(src)
	case string:
		*k = OpKind(src)
	default:
		return errors.Newf(
			"Incompatible type for OpKind with value: %q", src)
	}

	return nil
}
