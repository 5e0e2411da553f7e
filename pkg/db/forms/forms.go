package forms

import (
	"time"

	"github.com/case-framework/case-forms/pkg/fault"
	"github.com/case-framework/case-forms/pkg/forms/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateForm stores a new form. Id, creation time and response counter are always assigned here.
func (dbService *FormsDBService) CreateForm(form types.Form) (types.Form, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	form.ID = primitive.NilObjectID
	form.CreatedAt = time.Now().UTC()
	form.Responses = 0
	if form.Questions == nil {
		form.Questions = []types.Question{}
	}

	res, err := dbService.collectionForms().InsertOne(ctx, form)
	if err != nil {
		return types.Form{}, fault.NewInternalError("create form", err)
	}
	form.ID = res.InsertedID.(primitive.ObjectID)
	return form, nil
}

// GetForms returns all forms, newest first.
func (dbService *FormsDBService) GetForms() ([]types.Form, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := dbService.collectionForms().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fault.NewInternalError("get forms", err)
	}
	defer cursor.Close(ctx)

	forms := []types.Form{}
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, fault.NewInternalError("decode forms", err)
	}
	return forms, nil
}

func (dbService *FormsDBService) GetFormByID(id string) (types.Form, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return types.Form{}, err
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	var form types.Form
	err = dbService.collectionForms().FindOne(ctx, bson.M{"_id": objID}).Decode(&form)
	if err != nil {
		return types.Form{}, mapError(err, "get form "+id)
	}
	return form, nil
}

// ReplaceForm overwrites the editable content of a form. Creation time and response counter
// are kept.
func (dbService *FormsDBService) ReplaceForm(id string, form types.Form) (types.Form, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return types.Form{}, err
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	questions := form.Questions
	if questions == nil {
		questions = []types.Question{}
	}

	update := bson.M{
		"$set": bson.M{
			"title":       form.Title,
			"description": form.Description,
			"headerImage": form.HeaderImage,
			"questions":   questions,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated types.Form
	err = dbService.collectionForms().FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err != nil {
		return types.Form{}, mapError(err, "replace form "+id)
	}
	return updated, nil
}

// IncrementResponseCount adds one to the form's response counter. A missing form is not an error.
func (dbService *FormsDBService) IncrementResponseCount(formID primitive.ObjectID) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionForms().UpdateOne(
		ctx,
		bson.M{"_id": formID},
		bson.M{"$inc": bson.M{"responses": 1}},
	)
	if err != nil {
		return fault.NewInternalError("increment response count", err)
	}
	return nil
}
