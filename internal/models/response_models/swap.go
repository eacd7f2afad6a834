package response_models

type SwapDetails struct {
	OldActivity    string  `json:"oldActivity"`
	NewActivity    string  `json:"newActivity"`
	CostDifference float64 `json:"costDifference"`
}

type SwapResult struct {
	Itinerary   *Itinerary  `json:"itinerary"`
	SwapDetails SwapDetails `json:"swapDetails"`
}

type SwapAlternativesResponse struct {
	Alternatives []Activity `json:"alternatives"`
}
