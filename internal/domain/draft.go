package domain

// BookingDraft holds in-progress booking input for one form session.
// Fields are plain strings mutated field-by-field by the client; nothing is
// validated here — step completeness is checked by the flow on advance and
// the whole draft is re-validated at submission time.
type BookingDraft struct {
	Date    string // YYYY-MM-DD
	Time    string // HH:MM, one of domain.TimeSlots
	Address string
	Name    string
	Phone   string
	Notes   string // optional
}

// IsEmpty returns true if no field has been filled in yet
func (d BookingDraft) IsEmpty() bool {
	return d.Date == "" && d.Time == "" && d.Address == "" &&
		d.Name == "" && d.Phone == "" && d.Notes == ""
}
