package models

// MatchRequest is the transient input for POST /api/match; it is never
// persisted. Absent fields impose no constraint.
type MatchRequest struct {
	Age              *int     `json:"age"`
	Concerns         []string `json:"concerns"`
	Language         string   `json:"language"`
	GenderPreference string   `json:"gender_preference"`
	City             string   `json:"city"`
}

// MatchResult is the projected therapist shape returned by the matcher.
type MatchResult struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Languages       []string `json:"languages"`
	Specialties     []string `json:"specialties"`
	City            string   `json:"city"`
	Rating          float64  `json:"rating"`
	PricePerWeekINR int      `json:"price_per_week_inr"`
	PhotoURL        string   `json:"photo_url"`
}

// MatchResultOf projects a therapist record into the match response shape.
// A record without a stored rating renders the default, not zero.
func MatchResultOf(t Therapist) MatchResult {
	rating := defaultRating
	if t.Rating != nil {
		rating = *t.Rating
	}
	return MatchResult{
		ID:              t.ID.Hex(),
		Name:            t.Name,
		Languages:       t.Languages,
		Specialties:     t.Specialties,
		City:            t.City,
		Rating:          rating,
		PricePerWeekINR: t.PricePerWeekINR,
		PhotoURL:        t.PhotoURL,
	}
}
