package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventmanager/internal/domain"
)

// IsValidID reports whether s is a well-formed ObjectID hex string
// (24 hexadecimal characters).
func IsValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// ParseID converts the external hex id into its ObjectID form. Malformed input
// returns domain.ErrInvalidEventID before it can reach the driver.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidEventID
	}
	return id, nil
}
