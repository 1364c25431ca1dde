package models

import "time"

// Review is anchored to one completed stay: the BookingID reference is
// what caps reviews at one per booking and proves the reviewer stayed.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	HouseID   string    `bson:"house_id" json:"houseId"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
