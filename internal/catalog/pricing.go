package catalog

import (
	"fmt"
	"math"

	"github.com/conectajovem/platform/internal/model"
)

// PremiumRatio is the fraction of the list price charged on the
// premium tier ("80% de desconto").
const PremiumRatio = 0.2

// Discount returns a copy of the course priced at ratio r of its list
// price, rounded to cents, with the list price preserved in
// original_price. 0 < r <= 1; r == 1 keeps the price unchanged.
// The input course is not modified.
func Discount(c model.Course, r float64) (model.Course, error) {
	if r <= 0 || r > 1 {
		return model.Course{}, fmt.Errorf("discount ratio %v out of range (0, 1]", r)
	}
	c.OriginalPrice = c.Price
	c.Price = math.Round(c.Price*r*100) / 100
	return c, nil
}

// DiscountAll applies Discount to every course in the batch.
func DiscountAll(courses []model.Course, r float64) ([]model.Course, error) {
	out := make([]model.Course, len(courses))
	for i, c := range courses {
		d, err := Discount(c, r)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
