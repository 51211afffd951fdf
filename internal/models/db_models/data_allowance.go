package db_models

import "fmt"

// DataAllowance is a plan's data cap in whole gigabytes. The value -1 is the
// wire and storage encoding for an unlimited allowance; every comparison goes
// through Covers so the sentinel never leaks into call sites.
type DataAllowance int64

const Unlimited DataAllowance = -1

func (d DataAllowance) IsUnlimited() bool {
	return d == Unlimited
}

// Covers reports whether the allowance satisfies a requirement of gb
// gigabytes. Unlimited covers every non-negative requirement.
func (d DataAllowance) Covers(gb int64) bool {
	return d.IsUnlimited() || int64(d) >= gb
}

func (d DataAllowance) String() string {
	if d.IsUnlimited() {
		return "Unlimited"
	}
	return fmt.Sprintf("%d GB", int64(d))
}
