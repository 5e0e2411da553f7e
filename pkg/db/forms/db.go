package forms

import (
	"context"
	"log/slog"
	"time"

	"github.com/case-framework/case-forms/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_FORMS     = "forms"
	COLLECTION_NAME_RESPONSES = "responses"
)

type FormsDBService struct {
	DBClient        *mongo.Client
	timeout         time.Duration
	noCursorTimeout bool
	DBNamePrefix    string
}

func NewFormsDBService(configs db.DBConfig) (*FormsDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), configs.Timeout)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetAppName(configs.AppName),
		options.Client().SetMaxConnIdleTime(configs.IdleConnTimeout),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
		// answers are free-form documents and must come back as maps, not ordered key lists
		options.Client().SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), configs.Timeout)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	formsDBSc := &FormsDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
	}

	if configs.RunIndexCreation {
		if err := formsDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for forms DB", slog.String("error", err.Error()))
		}
	}

	return formsDBSc, nil
}

func (dbService *FormsDBService) getDBName() string {
	return dbService.DBNamePrefix + "formsDB"
}

func (dbService *FormsDBService) collectionForms() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_FORMS)
}

func (dbService *FormsDBService) collectionResponses() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_RESPONSES)
}

func (dbService *FormsDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbService.timeout)
}

// Close disconnects the client.
func (dbService *FormsDBService) Close() error {
	ctx, cancel := dbService.getContext()
	defer cancel()
	return dbService.DBClient.Disconnect(ctx)
}

var (
	formsIndexes = []db.IndexSpec{
		{Name: "createdAt_-1", Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	responsesIndexes = []db.IndexSpec{
		{
			Name: "formId_1_submittedAt_-1",
			Keys: bson.D{
				{Key: "formId", Value: 1},
				{Key: "submittedAt", Value: -1},
			},
		},
	}
)

func (dbService *FormsDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for forms DB")

	ctx, cancel := dbService.getContext()
	defer cancel()

	if err := db.EnsureIndexes(ctx, dbService.collectionForms(), formsIndexes); err != nil {
		slog.Error("Error creating indexes for formsDB.forms", slog.String("error", err.Error()))
		return err
	}
	if err := db.EnsureIndexes(ctx, dbService.collectionResponses(), responsesIndexes); err != nil {
		slog.Error("Error creating indexes for formsDB.responses", slog.String("error", err.Error()))
		return err
	}
	return nil
}
