package domain

import "github.com/holiman/uint256"

var hundred = uint256.NewInt(100)

// Split is the payout plan for one payment. Vendor is always the remainder,
// so Affiliate1 + Affiliate2 + Vendor == Amount.
type Split struct {
	Amount     *uint256.Int
	Affiliate1 *uint256.Int
	Affiliate2 *uint256.Int
	Vendor     *uint256.Int
}

// ComputeSplit applies the requested percentages to amount with truncating
// division. A percentage only applies when its affiliate slot is live;
// level2 is ignored unless level1 is live.
func ComputeSplit(amount *uint256.Int, pct1, pct2 uint64, level1, level2 bool) (*Split, error) {
	if amount == nil || amount.IsZero() {
		return nil, ErrZeroAmount
	}

	s := &Split{
		Amount:     new(uint256.Int).Set(amount),
		Affiliate1: new(uint256.Int),
		Affiliate2: new(uint256.Int),
	}

	if level1 {
		a1, err := share(amount, pct1)
		if err != nil {
			return nil, err
		}
		s.Affiliate1 = a1

		if level2 {
			a2, err := share(amount, pct2)
			if err != nil {
				return nil, err
			}
			s.Affiliate2 = a2
		}
	}

	commission, overflow := new(uint256.Int).AddOverflow(s.Affiliate1, s.Affiliate2)
	if overflow || commission.Gt(amount) {
		return nil, ErrCommissionExceedsAmount
	}
	s.Vendor = new(uint256.Int).Sub(amount, commission)

	return s, nil
}

// Total returns the sum of all legs.
func (s *Split) Total() *uint256.Int {
	t := new(uint256.Int).Add(s.Affiliate1, s.Affiliate2)
	return t.Add(t, s.Vendor)
}

// share returns floor(amount * pct / 100).
func share(amount *uint256.Int, pct uint64) (*uint256.Int, error) {
	if pct == 0 {
		return new(uint256.Int), nil
	}
	product, overflow := new(uint256.Int).MulOverflow(amount, uint256.NewInt(pct))
	if overflow {
		return nil, ErrAmountOverflow
	}
	return product.Div(product, hundred), nil
}
