package services

import (
	"context"
	"encoding/json"
	"time"

	"go-restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingsStore persists the key/value entries that were local-storage keys
// in the browser application (active invoice pointer, manager password,
// close bookkeeping, presentation settings).
type SettingsStore struct {
	settings *mongo.Collection
}

func NewSettingsStore(settings *mongo.Collection) *SettingsStore {
	return &SettingsStore{settings: settings}
}

func (s *SettingsStore) Get(ctx context.Context, key string) (string, error) {
	var setting models.Setting
	err := s.settings.FindOne(ctx, bson.M{"key": key}).Decode(&setting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

// GetDefault returns def when the key is absent or the lookup fails.
func (s *SettingsStore) GetDefault(ctx context.Context, key string, def string) string {
	value, err := s.Get(ctx, key)
	if err != nil || value == "" {
		return def
	}
	return value
}

func (s *SettingsStore) Set(ctx context.Context, key string, value string) error {
	upsert := true
	opts := options.UpdateOptions{Upsert: &upsert}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "key", Value: key},
		{Key: "value", Value: value},
		{Key: "updated_at", Value: time.Now()},
	}}, {Key: "$setOnInsert", Value: bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
	}}}

	_, err := s.settings.UpdateOne(ctx, bson.M{"key": key}, update, &opts)
	return err
}

func (s *SettingsStore) Delete(ctx context.Context, key string) error {
	_, err := s.settings.DeleteOne(ctx, bson.M{"key": key})
	return err
}

func (s *SettingsStore) All(ctx context.Context) ([]models.Setting, error) {
	cursor, err := s.settings.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var settings []models.Setting
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsStore) SetJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(raw))
}

// GetJSON decodes the stored value into out; found reports whether the key
// holds anything.
func (s *SettingsStore) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	value, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if value == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, err
	}
	return true, nil
}
