package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// snapshotDocument 는 store_snapshots 컬렉션의 문서다. _id 가 스냅샷 이름이다.
type snapshotDocument struct {
	Name    string    `bson:"_id"`
	Data    []byte    `bson:"data"`
	SavedAt time.Time `bson:"saved_at"`
}

// MongoStorage 는 스냅샷을 MongoDB 컬렉션에 문서 하나로 저장한다.
type MongoStorage struct {
	coll *mongo.Collection
}

func NewMongoStorage(coll *mongo.Collection) *MongoStorage {
	return &MongoStorage{coll: coll}
}

func (m *MongoStorage) Name() string { return "mongo" }

func (m *MongoStorage) Load(ctx context.Context, name string) ([]byte, error) {
	var doc snapshotDocument
	err := m.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return doc.Data, nil
}

func (m *MongoStorage) Save(ctx context.Context, name string, data []byte) error {
	doc := snapshotDocument{Name: name, Data: data, SavedAt: time.Now().UTC()}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": name}, doc, options.Replace().SetUpsert(true))
	return err
}

func (m *MongoStorage) Clear(ctx context.Context) error {
	_, err := m.coll.DeleteMany(ctx, bson.M{})
	return err
}
