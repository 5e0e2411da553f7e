package forms

import (
	"errors"
	"fmt"

	"github.com/case-framework/case-forms/pkg/fault"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func parseObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", fault.ErrInvalidID, id)
	}
	return objID, nil
}

// mapError turns driver errors into the fault taxonomy.
func mapError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", what, fault.ErrNotFound)
	}
	return fault.NewInternalError(what, err)
}
