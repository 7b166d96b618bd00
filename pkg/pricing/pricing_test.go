package pricing

import "testing"

func TestDiscountForDuration_Tiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		months int
		want   float64
	}{
		{months: 0, want: 0},
		{months: 1, want: 0},
		{months: 2, want: 0},
		{months: 3, want: 0.10},
		{months: 5, want: 0.10},
		{months: 6, want: 0.15},
		{months: 11, want: 0.15},
		{months: 12, want: 0.20},
		{months: 24, want: 0.20},
		{months: -4, want: 0},
	}

	for _, tc := range cases {
		if got := DiscountForDuration(tc.months); got != tc.want {
			t.Fatalf("DiscountForDuration(%d) = %v, want %v", tc.months, got, tc.want)
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	t.Parallel()

	if got := DiscountPercent(12); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
	if got := DiscountPercent(1); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestUnitPriceAfterDiscount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		unit   int64
		months int
		want   int64
	}{
		{name: "no discount", unit: 599000, months: 1, want: 599000},
		{name: "quarterly tier", unit: 599000, months: 3, want: 539100},
		{name: "half year tier", unit: 100000, months: 6, want: 85000},
		{name: "yearly tier", unit: 599000, months: 12, want: 479200},
		{name: "zero price", unit: 0, months: 12, want: 0},
		{name: "negative price clamps", unit: -500, months: 12, want: 0},
		{name: "rounds half to even", unit: 15, months: 3, want: 14},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := UnitPriceAfterDiscount(tc.unit, tc.months); got != tc.want {
				t.Fatalf("UnitPriceAfterDiscount(%d, %d) = %d, want %d", tc.unit, tc.months, got, tc.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want int64
	}{
		{raw: "599000", want: 599000},
		{raw: "599,000", want: 599000},
		{raw: "599,000 تومان", want: 599000},
		{raw: "  1,490,000 toman ", want: 1490000},
		{raw: "free", want: 0},
		{raw: "", want: 0},
	}

	for _, tc := range cases {
		if got := ParseAmount(tc.raw); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestParseQuantityAndDuration(t *testing.T) {
	t.Parallel()

	if got := ParseQuantity("4"); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := ParseQuantity("zero"); got != 1 {
		t.Fatalf("expected fallback 1, got %d", got)
	}
	if got := ParseQuantity("-2"); got != 1 {
		t.Fatalf("expected fallback 1, got %d", got)
	}
	if got := ParseDuration("12"); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	if got := ParseDuration(""); got != 1 {
		t.Fatalf("expected fallback 1, got %d", got)
	}
}
