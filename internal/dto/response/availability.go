package response

type AvailabilityResponse struct {
	Available     bool     `json:"available"`
	Reason        string   `json:"reason,omitempty"`
	ConflictDates []string `json:"conflict_dates,omitempty"`
}
