package deposit

import "time"

// SetSettle overrides the pause between upload and approval.
func (y *Yareta) SetSettle(d time.Duration) {
	y.settle = d
}
