// Package fuel implements the balance arithmetic of the shared fuel ledger.
//
// The ledger keeps two raw numbers per friend: the liters still owed and the
// total amount ever paid. Everything a caller sees is derived from those two
// at a fixed price per liter and quantized to two decimals.
// Invariants:
//   - PricePerLiter is a process-wide constant, not configurable per friend.
//   - Liters may go negative: a negative balance is prepaid credit.
//   - All derived values are rounded half away from zero to two decimals.
package fuel

import "math"

// PricePerLiter is the fixed fuel price in SEK per liter used to convert
// between liters and money.
const PricePerLiter = 10.0

// Round2 quantizes x to two decimal places, rounding half away from zero.
// Create and read paths must both go through this so stored and displayed
// values never disagree at the cent boundary.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ToSEK converts a liter amount to SEK at the fixed price, rounded to
// two decimals.
func ToSEK(liters float64) float64 {
	return Round2(liters * PricePerLiter)
}

// LitersFor converts a SEK amount to the liters it pays for at the
// fixed price. The result is not rounded: it feeds back into the
// stored balance, and rounding there would drift the ledger.
func LitersFor(amountSEK float64) float64 {
	return amountSEK / PricePerLiter
}

// Balance is the derived, two-decimal view of one friend's ledger state.
//
// RemainingSEK always equals TotalSEK: the stored liters already count only
// what is still owed, so the signed currency value of the balance is the
// amount outstanding. A negative RemainingSEK means credit in hand.
// PaidSEK is a lifetime counter and is never subtracted from the total.
type Balance struct {
	TotalLiters  float64
	TotalSEK     float64
	PaidSEK      float64
	RemainingSEK float64
}

// BalanceOf derives the rounded balance view from the raw stored liters
// and lifetime paid amount.
func BalanceOf(liters, paidSEK float64) Balance {
	totalSEK := ToSEK(liters)
	return Balance{
		TotalLiters:  Round2(liters),
		TotalSEK:     totalSEK,
		PaidSEK:      Round2(paidSEK),
		RemainingSEK: totalSEK,
	}
}
