package loaders

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rowpipe/rowpipe/pkg/database"
	"github.com/rowpipe/rowpipe/pkg/etl"
)

// MongoLoader bulk-upserts every dataset row into a collection, keyed on
// the IDColumn value.
type MongoLoader struct {
	ConnURL    string
	Database   string
	Collection string
	// IDColumn is the dataset column holding the document identity; it is
	// used both as the filter field and as part of the stored document.
	IDColumn string
	Logger   hclog.Logger
}

var _ etl.Loader = &MongoLoader{}

func (l *MongoLoader) Load(ctx context.Context, data *etl.Dataset) error {
	if l.IDColumn == "" {
		return errors.New("MongoLoader needs an IDColumn")
	}

	log := l.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	client, err := database.ConnectMongo(ctx, l.ConnURL)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	writes := make([]mongo.WriteModel, 0, data.Len())
	for i, row := range data.Rows {
		idVal, ok := row[l.IDColumn]
		if !ok || idVal == nil {
			return fmt.Errorf("row %d has no value for ID column %q", i, l.IDColumn)
		}

		model := mongo.NewUpdateOneModel().
			SetFilter(bson.M{l.IDColumn: idVal}).
			SetUpdate(bson.M{"$set": bson.M(row)}).
			SetUpsert(true)
		writes = append(writes, model)
	}
	if len(writes) == 0 {
		return nil
	}

	coll := client.Database(l.Database).Collection(l.Collection)
	res, err := coll.BulkWrite(ctx, writes)
	if err != nil {
		return fmt.Errorf("bulk writing to %s.%s: %w", l.Database, l.Collection, err)
	}

	log.Info("Mongo load done", "collection", l.Collection,
		"matched", res.MatchedCount, "modified", res.ModifiedCount, "upserted", res.UpsertedCount)
	return nil
}
