package models

// SavingsGoal tracks a user-declared target and the amount saved toward it.
// Goals are keyed by name in the snapshot and have no linkage to
// transactions or categories.
type SavingsGoal struct {
	Target float64 `json:"target"`
	Saved  float64 `json:"saved"`
}
