package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is looked up, updated and deleted by the numeric "id" field.
// The Mongo _id stays internal and is never serialized to clients.
type Product struct {
	OID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID       int64              `bson:"id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Currency string             `bson:"currency" json:"currency"`
	Image    string             `bson:"image" json:"image"`
}

// ProductUpdate carries only the fields present in an update request.
// Nil fields are left untouched in the stored document.
type ProductUpdate struct {
	ID       *int64   `json:"id"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Currency *string  `json:"currency"`
	Image    *string  `json:"image"`
}
