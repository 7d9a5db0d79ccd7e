package dice

import (
	"slices"
	"sort"
)

// FourDSixDropLowest is the classic ability-score method: roll four six-sided
// dice and keep the highest three.
const FourDSixDropLowest = "4d6kh3"

var fourDSixDropLowest = MustParse(FourDSixDropLowest)

// Roll evaluates an Expression using the given Source and returns a RollResult.
//
// Precondition: expr must come from Parse (Count >= 1, Sides >= 2); src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count when KeepHighest == 0, or
//
//	len(result.Dice) == expr.KeepHighest and
//	len(result.Dropped) == expr.Count-expr.KeepHighest when KeepHighest > 0.
//	Every dropped die is <= every kept die.
func Roll(expr Expression, src Source) (RollResult, error) {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}

	kept := rolled
	var dropped []int
	if expr.KeepHighest > 0 {
		sorted := slices.Clone(rolled)
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
		kept = sorted[:expr.KeepHighest]
		dropped = sorted[expr.KeepHighest:]
	}

	return RollResult{
		Expression: expr.Raw,
		Dice:       kept,
		Dropped:    dropped,
		Modifier:   expr.Modifier,
	}, nil
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a RollResult or a parse error.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src)
}

// RollFourDSixDropLowest rolls 4d6, discards the single lowest die and
// returns the sum of the remaining three.
//
// Postcondition: 3 <= result <= 18.
func RollFourDSixDropLowest(src Source) int {
	// Roll cannot fail for a parsed expression.
	res, _ := Roll(fourDSixDropLowest, src)
	return res.Total()
}

// MustParse parses expr and panics on error. Useful for package-level values.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}
