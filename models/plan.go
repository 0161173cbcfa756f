package models

// Plan is a subscription tier. Plans are a fixed in-memory list, not a
// persisted entity.
type Plan struct {
	Name     string   `json:"name"`
	PriceINR int      `json:"price_inr"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
}
