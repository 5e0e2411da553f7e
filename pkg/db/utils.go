package db

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NamespaceNotFound, returned when listing indexes of a collection that does not exist yet
const errCodeNamespaceNotFound = 26

// IndexSpec describes an index by its mongo name, e.g. "formId_1_submittedAt_-1".
type IndexSpec struct {
	Name   string
	Keys   bson.D
	Unique bool
}

func ListCollectionIndexes(ctx context.Context, collection *mongo.Collection) ([]bson.M, error) {
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Code == errCodeNamespaceNotFound {
			return []bson.M{}, nil
		}
		return nil, err
	}
	defer cursor.Close(ctx)

	indexes := []bson.M{}
	if err = cursor.All(ctx, &indexes); err != nil {
		return nil, err
	}
	return indexes, nil
}

// EnsureIndexes creates the indexes of specs that are not yet present on collection.
func EnsureIndexes(ctx context.Context, collection *mongo.Collection, specs []IndexSpec) error {
	existing, err := ListCollectionIndexes(ctx, collection)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(existing))
	for _, index := range existing {
		if name, ok := index["name"].(string); ok {
			names = append(names, name)
		}
	}

	missing := missingIndexes(specs, names)
	if len(missing) == 0 {
		return nil
	}

	models := make([]mongo.IndexModel, 0, len(missing))
	for _, spec := range missing {
		opts := options.Index().SetName(spec.Name)
		if spec.Unique {
			opts.SetUnique(true)
		}
		models = append(models, mongo.IndexModel{Keys: spec.Keys, Options: opts})
		slog.Info("creating index", slog.String("collection", collection.Name()), slog.String("index", spec.Name))
	}
	_, err = collection.Indexes().CreateMany(ctx, models)
	return err
}

func missingIndexes(specs []IndexSpec, existingNames []string) []IndexSpec {
	missing := []IndexSpec{}
	for _, spec := range specs {
		if !slices.Contains(existingNames, spec.Name) {
			missing = append(missing, spec)
		}
	}
	return missing
}
