package get_trial_availability

// TrialAvailabilityResponse HTTP response model
type TrialAvailabilityResponse struct {
	StudentEmail   string `json:"studentEmail"`
	TrialAvailable bool   `json:"trialAvailable"`
}
