package directory

import (
	"testing"

	"bettermann/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDirectoryFilter(t *testing.T) {
	tests := []struct {
		name     string
		language string
		city     string
		q        string
		want     bson.M
	}{
		{
			name: "no parameters imposes no constraint",
			want: bson.M{},
		},
		{
			name: "city is a case-insensitive substring match",
			city: "bang",
			want: bson.M{"city": primitive.Regex{Pattern: "bang", Options: "i"}},
		},
		{
			name:     "language matches any element of languages",
			language: "hin",
			want:     bson.M{"languages": primitive.Regex{Pattern: "hin", Options: "i"}},
		},
		{
			name: "q matches name or any specialty",
			q:    "anx",
			want: bson.M{
				"$or": []bson.M{
					{"name": primitive.Regex{Pattern: "anx", Options: "i"}},
					{"specialties": bson.M{"$elemMatch": bson.M{"$regex": primitive.Regex{Pattern: "anx", Options: "i"}}}},
				},
			},
		},
		{
			name:     "all parameters combine",
			language: "en",
			city:     "delhi",
			q:        "stress",
			want: bson.M{
				"languages": primitive.Regex{Pattern: "en", Options: "i"},
				"city":      primitive.Regex{Pattern: "delhi", Options: "i"},
				"$or": []bson.M{
					{"name": primitive.Regex{Pattern: "stress", Options: "i"}},
					{"specialties": bson.M{"$elemMatch": bson.M{"$regex": primitive.Regex{Pattern: "stress", Options: "i"}}}},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectoryFilter(tt.language, tt.city, tt.q))
		})
	}
}

func TestMatchFilter(t *testing.T) {
	tests := []struct {
		name string
		req  models.MatchRequest
		want bson.M
	}{
		{
			name: "empty request imposes no constraint",
			req:  models.MatchRequest{},
			want: bson.M{},
		},
		{
			name: "concerns are exact set membership, not substrings",
			req:  models.MatchRequest{Concerns: []string{"anxiety", "couples"}},
			want: bson.M{"specialties": bson.M{"$in": []string{"anxiety", "couples"}}},
		},
		{
			name: "all three conditions AND together",
			req: models.MatchRequest{
				Language: "tamil",
				City:     "chen",
				Concerns: []string{"depression"},
			},
			want: bson.M{
				"languages":   primitive.Regex{Pattern: "tamil", Options: "i"},
				"city":        primitive.Regex{Pattern: "chen", Options: "i"},
				"specialties": bson.M{"$in": []string{"depression"}},
			},
		},
		{
			name: "age and gender preference are accepted but unused",
			req: models.MatchRequest{
				Age:              intPtr(30),
				GenderPreference: "female",
			},
			want: bson.M{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchFilter(tt.req))
		})
	}
}

func intPtr(v int) *int { return &v }
