package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression represents a parsed dice expression ready to be rolled.
// Precondition: Count >= 1, Sides >= 2 after successful Parse.
type Expression struct {
	Raw         string // original input string
	Count       int    // number of dice
	Sides       int    // faces per die
	Modifier    int    // flat modifier (may be negative)
	KeepHighest int    // if > 0, keep only the N highest dice (4d6kh3 and 4d6dl1 both set 3)
}

// Parse parses a dice expression string into an Expression.
// Supported forms: "d20", "3d6", "2d6+3", "4d8-2", "4d6kh3", "4d6dl1".
// A "dl<N>" suffix drops the N lowest dice and is stored as KeepHighest = Count-N.
//
// Postcondition: Returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	if expr == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}

	raw := expr
	s := strings.ToLower(strings.TrimSpace(expr))

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		return Expression{}, fmt.Errorf("dice: missing 'd' in expression %q", raw)
	}

	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if count <= 0 {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", raw)
		}
	}

	rest := s[dIdx+1:]

	keepHighest := 0
	for _, suffix := range []string{"kh", "dl"} {
		idx := strings.Index(rest, suffix)
		if idx < 0 {
			continue
		}
		if keepHighest > 0 {
			return Expression{}, fmt.Errorf("dice: kh and dl cannot be combined in %q", raw)
		}
		var nStr string
		rest, nStr = splitSuffix(rest, idx, len(suffix))
		n, err := strconv.Atoi(nStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid %s value in %q: %w", suffix, raw, err)
		}
		if n <= 0 || n >= count {
			return Expression{}, fmt.Errorf("dice: %s value %d must be > 0 and < count %d in %q", suffix, n, count, raw)
		}
		if suffix == "dl" {
			n = count - n
		}
		keepHighest = n
	}

	modOffset := signIndex(rest)
	sidesStr, modStr := rest, ""
	if modOffset >= 0 {
		sidesStr, modStr = rest[:modOffset], rest[modOffset:]
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 2 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", raw)
	}

	modifier := 0
	if modStr != "" {
		modifier, err = strconv.Atoi(modStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", raw, err)
		}
	}

	return Expression{
		Raw:         raw,
		Count:       count,
		Sides:       sides,
		Modifier:    modifier,
		KeepHighest: keepHighest,
	}, nil
}

// splitSuffix cuts the keep/drop suffix starting at idx out of rest and
// returns the remainder (with any trailing modifier re-attached) and the
// suffix's numeric argument.
func splitSuffix(rest string, idx, width int) (string, string) {
	part := rest[idx+width:]
	head := rest[:idx]
	if off := signIndex(part); off >= 0 {
		return head + part[off:], part[:off]
	}
	return head, part
}

// signIndex returns the index of the first '+' or '-' past position 0, or -1.
func signIndex(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			return i
		}
	}
	return -1
}
