package models

import "time"

// GuestCapacity caps each guest category plus the overall headcount.
type GuestCapacity struct {
	Adults    int `bson:"adults" json:"adults"`
	Children  int `bson:"children" json:"children"`
	Infants   int `bson:"infants" json:"infants"`
	Pets      int `bson:"pets" json:"pets"`
	MaxGuests int `bson:"max_guests" json:"maxGuests"`
}

// DateWindow is a closed range of dates during which a house is open
// for booking.
type DateWindow struct {
	From time.Time `bson:"from" json:"from"`
	To   time.Time `bson:"to" json:"to"`
}

// ImageGroup groups image URLs by kind (e.g. "interior", "exterior").
type ImageGroup struct {
	Type string   `bson:"type" json:"type"`
	URLs []string `bson:"urls" json:"urls"`
}

// House is a rental listing. The booking engine reads it but never
// writes anything except the rating aggregates.
type House struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Location    string `bson:"location" json:"location"`
	HouseTypeID string `bson:"house_type_id,omitempty" json:"houseTypeId,omitempty"`

	PricePerNight float64       `bson:"price_per_night" json:"pricePerNight"`
	GuestCapacity GuestCapacity `bson:"guest_capacity" json:"guestCapacity"`

	// Availability lists the open windows during which booking is
	// permitted at all. An empty list means always open.
	Availability []DateWindow `bson:"availability,omitempty" json:"availability,omitempty"`

	Images    []ImageGroup `bson:"images,omitempty" json:"images,omitempty"`
	HostID    string       `bson:"host_id" json:"hostId"`
	Amenities []string     `bson:"amenities,omitempty" json:"amenities,omitempty"`

	RatingSum   float64 `bson:"rating_sum" json:"-"`
	RatingCount int     `bson:"rating_count" json:"ratingCount"`
	RatingAvg   float64 `bson:"rating_avg" json:"ratingAvg"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
