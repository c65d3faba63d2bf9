package quote

import "testing"

func TestComputeStructure_RoundsPartialBarsUp(t *testing.T) {
	// 3m x 2m frame, no braces: perimeter 10m over 6m bars is 1.67 bars,
	// billed as 2 whole bars.
	st := ComputeStructure(FrameInput{WidthM: 3, HeightM: 2}, 6, 8)

	nearlyEqual(t, "linear meters", st.LinearMeters, 10)
	nearlyEqual(t, "bars needed", st.BarsNeeded, 10.0/6.0)
	if st.BarsToCharge != 2 {
		t.Fatalf("bars to charge = %d, want 2", st.BarsToCharge)
	}
	nearlyEqual(t, "total cost", st.TotalCost, 16)
}

func TestComputeStructure_BracesAddLinearMeters(t *testing.T) {
	st := ComputeStructure(FrameInput{WidthM: 4, HeightM: 2, HorizontalBraces: 2, VerticalBraces: 3}, 6, 38)

	// Perimeter 12 + 2*4 horizontal + 3*2 vertical = 26m -> 5 bars.
	nearlyEqual(t, "linear meters", st.LinearMeters, 26)
	if st.BarsToCharge != 5 {
		t.Fatalf("bars to charge = %d, want 5", st.BarsToCharge)
	}
	nearlyEqual(t, "total cost", st.TotalCost, 190)
	nearlyEqual(t, "cost per m2", st.CostPerSquareMeter, 190.0/8.0)
}

func TestComputeStructure_ExactFitIsNotRoundedUp(t *testing.T) {
	// Perimeter 12m over 6m bars is exactly 2 bars.
	st := ComputeStructure(FrameInput{WidthM: 4, HeightM: 2}, 6, 38)
	if st.BarsToCharge != 2 {
		t.Fatalf("bars to charge = %d, want 2", st.BarsToCharge)
	}
}

func TestComputeStructure_ZeroFrameReturnsAllZero(t *testing.T) {
	for name, frame := range map[string]FrameInput{
		"zero width":     {WidthM: 0, HeightM: 2},
		"zero height":    {WidthM: 3, HeightM: 0},
		"negative width": {WidthM: -1, HeightM: 2},
	} {
		st := ComputeStructure(frame, 6, 38)
		if st != (StructureResult{}) {
			t.Fatalf("%s: expected zero result, got %+v", name, st)
		}
	}
}

func TestComputeStructure_NegativeBracesTreatedAsZero(t *testing.T) {
	plain := ComputeStructure(FrameInput{WidthM: 3, HeightM: 2}, 6, 8)
	clamped := ComputeStructure(FrameInput{WidthM: 3, HeightM: 2, HorizontalBraces: -4, VerticalBraces: -1}, 6, 8)
	if plain != clamped {
		t.Fatalf("negative braces changed the result: %+v vs %+v", plain, clamped)
	}
}

func TestComputeStructure_NoMinimumChargeApplies(t *testing.T) {
	// A tiny frame costs one bar, below the area-rate floor. Bar pricing is
	// by count, so no floor applies.
	st := ComputeStructure(FrameInput{WidthM: 0.5, HeightM: 0.5}, 6, 10)
	if st.BarsToCharge != 1 {
		t.Fatalf("bars to charge = %d, want 1", st.BarsToCharge)
	}
	nearlyEqual(t, "total cost", st.TotalCost, 10)
}
