package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog categories used for the daily transaction split.
const (
	CategoryFood   = "food"
	CategoryDrinks = "drinks"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id"`
	Product_id  string             `json:"product_id" bson:"product_id"`
	Name        string             `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Price       float64            `json:"price" bson:"price" validate:"required,gte=0"`
	Category    string             `json:"category" bson:"category" validate:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Created_at  time.Time          `json:"created_at" bson:"created_at"`
	Updated_at  time.Time          `json:"updated_at" bson:"updated_at"`
}
