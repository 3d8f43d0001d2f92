package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultFrameRate <= 0 || DefaultFrameRate > MaxFrameRate {
		t.Fatalf("DefaultFrameRate must be within 1..MaxFrameRate")
	}
	if DefaultSpringStiffness <= 0 || DefaultSpringDamping <= 0 {
		t.Fatalf("spring defaults must be positive")
	}
	if HeaderOpaqueAlpha <= 0 || HeaderOpaqueAlpha > 1 {
		t.Fatalf("HeaderOpaqueAlpha must be in (0,1]")
	}
	if DefaultStaggerUnit <= 0 || DefaultEntranceDuration <= 0 {
		t.Fatalf("entrance timings must be positive")
	}
	if !(HeroHeadingDelay < HeroTaglineDelay && HeroTaglineDelay < HeroActionDelay) {
		t.Fatalf("hero delays must increase")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if ColumnWidthPx <= 0 || RowHeightPx <= 0 {
		t.Fatalf("cell geometry must be positive")
	}
	if TwoColumnMin >= ThreeColumnMin {
		t.Fatalf("grid breakpoints must increase")
	}
}
