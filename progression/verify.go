package progression

import (
	"errors"
	"fmt"
)

// ErrVerifyFailed indicates a canonical monotonicity property of the
// curvature → progression mapping does not hold. Seeing it means the
// calculators themselves are broken, not the caller's input.
var ErrVerifyFailed = errors.New("progression: curvature logic verification failed")

// Canonical verification fixture: K = ±0.5 and 0, base 10, rows 5.
const (
	verifyBase = 10
	verifyRows = 5
)

// VerifyCurvatureLogic recomputes three canonical progressions and
// asserts the properties every consumer relies on:
//
//   - K = -0.5 — last count strictly greater than the base (expansion)
//   - K = +0.5 — last count strictly less than the base (contraction)
//   - K = 0    — every count equals the base (constant)
//   - all three — length equals rows, first element equals base
//
// It is an embedded self-check, cheap enough to call at startup or in
// a health probe. Returns nil on success or ErrVerifyFailed (wrapped
// with the violated property) on failure.
//
// Complexity: O(rows).
func VerifyCurvatureLogic() error {
	expand := Radial(-0.5, verifyBase, verifyRows)
	contract := Radial(0.5, verifyBase, verifyRows)
	flat := Radial(0, verifyBase, verifyRows)

	for name, seq := range map[string][]int{"expand": expand, "contract": contract, "flat": flat} {
		if len(seq) != verifyRows {
			return fmt.Errorf("%s: len=%d, want %d: %w", name, len(seq), verifyRows, ErrVerifyFailed)
		}
		if seq[0] != verifyBase {
			return fmt.Errorf("%s: first=%d, want %d: %w", name, seq[0], verifyBase, ErrVerifyFailed)
		}
	}

	if last := expand[verifyRows-1]; last <= verifyBase {
		return fmt.Errorf("expand: last=%d not > base %d: %w", last, verifyBase, ErrVerifyFailed)
	}
	if last := contract[verifyRows-1]; last >= verifyBase {
		return fmt.Errorf("contract: last=%d not < base %d: %w", last, verifyBase, ErrVerifyFailed)
	}
	for i, c := range flat {
		if c != verifyBase {
			return fmt.Errorf("flat: row %d count=%d, want %d: %w", i+1, c, verifyBase, ErrVerifyFailed)
		}
	}

	return nil
}
