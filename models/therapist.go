package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// defaultRating is applied when a write omits rating and when a stored
// document carries none.
const defaultRating = 4.8

// Therapist is a directory entry for a practicing therapist. Rating is a
// pointer so a document written outside this API without a rating decodes to
// nil rather than 0; readers default it where the response shape needs one.
type Therapist struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Bio             string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Education       string             `bson:"education,omitempty" json:"education,omitempty"`
	Specialties     []string           `bson:"specialties" json:"specialties"`
	ExperienceYears int                `bson:"experience_years" json:"experience_years"`
	Languages       []string           `bson:"languages" json:"languages"`
	Gender          string             `bson:"gender,omitempty" json:"gender,omitempty"`
	City            string             `bson:"city,omitempty" json:"city,omitempty"`
	PricePerWeekINR int                `bson:"price_per_week_inr" json:"price_per_week_inr"`
	Rating          *float64           `bson:"rating" json:"rating,omitempty"`
	PhotoURL        string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Slots           []string           `bson:"slots" json:"slots"`
}

// TherapistInput is the payload for POST /api/therapists. Rating is a pointer
// so an absent value defaults to 4.8 while an out-of-range value is rejected.
type TherapistInput struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Bio             string   `json:"bio"`
	Education       string   `json:"education"`
	Specialties     []string `json:"specialties"`
	ExperienceYears int      `json:"experience_years" binding:"gte=0"`
	Languages       []string `json:"languages"`
	Gender          string   `json:"gender"`
	City            string   `json:"city"`
	PricePerWeekINR int      `json:"price_per_week_inr" binding:"gte=0"`
	Rating          *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	PhotoURL        string   `json:"photo_url"`
	Slots           []string `json:"slots"`
}

// Record builds the stored record, applying defaults for omitted fields.
func (in TherapistInput) Record() Therapist {
	t := Therapist{
		Name:            in.Name,
		Email:           in.Email,
		Bio:             in.Bio,
		Education:       in.Education,
		Specialties:     in.Specialties,
		ExperienceYears: in.ExperienceYears,
		Languages:       in.Languages,
		Gender:          in.Gender,
		City:            in.City,
		PricePerWeekINR: in.PricePerWeekINR,
		Rating:          in.Rating,
		PhotoURL:        in.PhotoURL,
		Slots:           in.Slots,
	}
	if t.Rating == nil {
		def := defaultRating
		t.Rating = &def
	}
	if t.Specialties == nil {
		t.Specialties = []string{}
	}
	if t.Languages == nil {
		t.Languages = []string{"English"}
	}
	if t.Slots == nil {
		t.Slots = []string{}
	}
	return t
}
