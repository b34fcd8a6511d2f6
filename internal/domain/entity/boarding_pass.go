package entity

import (
	"time"
)

// BoardingPass is the structured record reconstructed from one scan.
//
// Every string field defaults to "" rather than a null marker, so rendering
// and persistence never special-case absence. The extractor fills the fields
// it can recover and leaves the rest empty; ID, ImageData and CreatedAt are
// attached by the caller after extraction.
type BoardingPass struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Name           string    `bson:"name" json:"name"`
	PNR            string    `bson:"pnr" json:"pnr"`
	Flight         string    `bson:"flight" json:"flight"`
	Airline        string    `bson:"airline" json:"airline"`
	From           string    `bson:"from" json:"from"`
	FromCity       string    `bson:"fromCity" json:"fromCity"`
	To             string    `bson:"to" json:"to"`
	ToCity         string    `bson:"toCity" json:"toCity"`
	Gate           string    `bson:"gate" json:"gate"`
	Seat           string    `bson:"seat" json:"seat"`
	Zone           string    `bson:"zone" json:"zone"`
	Sequence       string    `bson:"sequence" json:"sequence"`
	BoardingTime   string    `bson:"boardingTime" json:"boardingTime"`
	DepartureTime  string    `bson:"departureTime" json:"departureTime"`
	Date           string    `bson:"date" json:"date"`
	CabinBaggage   string    `bson:"cabinBaggage" json:"cabinBaggage"`
	CheckinBaggage string    `bson:"checkinBaggage" json:"checkinBaggage"`
	Fare           string    `bson:"fare" json:"fare"`
	AddOns         string    `bson:"addOns" json:"addOns"`
	RawText        string    `bson:"rawText" json:"rawText"`
	ImageData      []byte    `bson:"imageData,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
