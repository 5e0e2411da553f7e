package forms

import (
	"context"
	"log/slog"
	"time"

	"github.com/case-framework/case-forms/pkg/fault"
	"github.com/case-framework/case-forms/pkg/forms/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddResponse stores a response and returns its id.
func (dbService *FormsDBService) AddResponse(response types.Response) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	response.ID = primitive.NilObjectID
	if response.SubmittedAt.IsZero() {
		response.SubmittedAt = time.Now().UTC()
	}
	if response.Answers == nil {
		response.Answers = map[string]any{}
	}

	res, err := dbService.collectionResponses().InsertOne(ctx, response)
	if err != nil {
		return "", fault.NewInternalError("add response", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// GetResponsesForForm returns the responses of a form, newest first.
func (dbService *FormsDBService) GetResponsesForForm(formID string) ([]types.Response, error) {
	objID, err := parseObjectID(formID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := dbService.collectionResponses().Find(ctx, bson.M{"formId": objID}, opts)
	if err != nil {
		return nil, fault.NewInternalError("get responses", err)
	}
	defer cursor.Close(ctx)

	responses := []types.Response{}
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, fault.NewInternalError("decode responses", err)
	}
	return responses, nil
}

func (dbService *FormsDBService) CountResponsesForForm(formID primitive.ObjectID) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	count, err := dbService.collectionResponses().CountDocuments(ctx, bson.M{"formId": formID})
	if err != nil {
		return 0, fault.NewInternalError("count responses", err)
	}
	return count, nil
}

// FindAndExecuteOnResponses streams the responses of a form submitted at or after since
// (oldest first) into fn. Undecodable documents are skipped.
func (dbService *FormsDBService) FindAndExecuteOnResponses(
	ctx context.Context,
	formID primitive.ObjectID,
	since time.Time,
	returnOnError bool,
	fn func(r types.Response) error,
) error {
	filter := bson.M{"formId": formID}
	if !since.IsZero() {
		filter["submittedAt"] = bson.M{"$gte": since}
	}
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: 1}})
	if dbService.noCursorTimeout {
		opts.SetNoCursorTimeout(true)
	}

	cursor, err := dbService.collectionResponses().Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var response types.Response
		if err = cursor.Decode(&response); err != nil {
			slog.Error("Error while decoding response", slog.String("error", err.Error()))
			continue
		}

		if err = fn(response); err != nil {
			slog.Error("Error while executing function on response", slog.String("responseID", response.ID.Hex()), slog.String("error", err.Error()))
			if returnOnError {
				return err
			}
			continue
		}
	}
	return cursor.Err()
}
