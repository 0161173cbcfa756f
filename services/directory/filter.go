package directory

import (
	"bettermann/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// containsIgnoreCase builds a case-insensitive substring condition, so a city
// filter of "bang" matches a stored "Bangalore".
func containsIgnoreCase(s string) primitive.Regex {
	return primitive.Regex{Pattern: s, Options: "i"}
}

// DirectoryFilter translates directory query parameters into a store filter.
// Absent parameters impose no constraint.
func DirectoryFilter(language, city, q string) bson.M {
	filter := bson.M{}
	if language != "" {
		filter["languages"] = containsIgnoreCase(language)
	}
	if city != "" {
		filter["city"] = containsIgnoreCase(city)
	}
	if q != "" {
		filter["$or"] = []bson.M{
			{"name": containsIgnoreCase(q)},
			{"specialties": bson.M{"$elemMatch": bson.M{"$regex": containsIgnoreCase(q)}}},
		}
	}
	return filter
}

// MatchFilter translates a match request into a store filter. Language and
// city match as case-insensitive substrings; concerns match by exact set
// membership against specialties. Conditions combine with AND.
func MatchFilter(req models.MatchRequest) bson.M {
	filter := bson.M{}
	if req.Language != "" {
		filter["languages"] = containsIgnoreCase(req.Language)
	}
	if req.City != "" {
		filter["city"] = containsIgnoreCase(req.City)
	}
	if len(req.Concerns) > 0 {
		filter["specialties"] = bson.M{"$in": req.Concerns}
	}
	return filter
}
