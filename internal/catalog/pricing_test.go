package catalog

import (
	"math"
	"testing"

	"github.com/conectajovem/platform/internal/model"
)

func TestDiscount_Premium(t *testing.T) {
	c := model.Course{ID: "a", Title: "Go do Zero", Price: 100}
	got, err := Discount(c, PremiumRatio)
	if err != nil {
		t.Fatalf("Discount: %v", err)
	}
	if got.Price != 20 || got.OriginalPrice != 100 {
		t.Fatalf("got price=%v original=%v, want 20/100", got.Price, got.OriginalPrice)
	}
	if c.Price != 100 || c.OriginalPrice != 0 {
		t.Fatalf("input mutated: %+v", c)
	}
}

func TestDiscount_RoundsToCents(t *testing.T) {
	got, err := Discount(model.Course{Price: 49.99}, PremiumRatio)
	if err != nil {
		t.Fatalf("Discount: %v", err)
	}
	if got.Price != 10.0 {
		t.Fatalf("49.99 * 0.2 rounded: got %v, want 10.0", got.Price)
	}
}

func TestDiscount_FullRatioIsIdentity(t *testing.T) {
	for _, price := range []float64{0, 19.9, 100, 1234.56} {
		got, err := Discount(model.Course{Price: price}, 1)
		if err != nil {
			t.Fatalf("Discount(%v, 1): %v", price, err)
		}
		if math.Abs(got.Price-price) > 1e-9 {
			t.Fatalf("r=1 drifted: %v -> %v", price, got.Price)
		}
	}
}

func TestDiscount_RejectsBadRatio(t *testing.T) {
	for _, r := range []float64{0, -0.5, 1.01} {
		if _, err := Discount(model.Course{Price: 10}, r); err == nil {
			t.Fatalf("ratio %v accepted", r)
		}
	}
}

func TestDiscountAll(t *testing.T) {
	courses := []model.Course{{Price: 100}, {Price: 0}}
	got, err := DiscountAll(courses, PremiumRatio)
	if err != nil {
		t.Fatalf("DiscountAll: %v", err)
	}
	if got[0].Price != 20 || got[1].Price != 0 {
		t.Fatalf("got %+v", got)
	}
	if got[1].OriginalPrice != 0 {
		t.Fatalf("free course original: %v", got[1].OriginalPrice)
	}
}
