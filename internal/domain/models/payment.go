package models

// Payment is money handed to a staff member against their balance. StaffID
// is a weak reference; deleting the staff member leaves the record in place.
type Payment struct {
	ID      string  `json:"id"`
	StaffID string  `json:"staffId"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"` // full timestamp of recording
	Notes   string  `json:"notes,omitempty"`
}
