package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"stayhaven/models"

	"go.mongodb.org/mongo-driver/bson"
)

// overlapFilter builds the query for bookings on houseID that intersect
// the half-open interval [checkIn, checkOut). Two intervals [a,b) and
// [c,d) overlap iff a < d && c < b, so back-to-back stays (one checkout
// equal to the next check-in) do not collide. Cancelled and Completed
// bookings no longer hold their interval.
func overlapFilter(houseID string, checkIn, checkOut time.Time, excludeID string) bson.M {
	filter := bson.M{
		"house_id": houseID,
		"booking_status": bson.M{
			"$in": []string{models.BookingStatusPending, models.BookingStatusConfirmed},
		},
		"check_in":  bson.M{"$lt": checkOut},
		"check_out": bson.M{"$gt": checkIn},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// HasOverlap reports whether any unresolved booking intersects the range.
func (r *MongoBookingRepo) HasOverlap(ctx context.Context, houseID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, overlapFilter(houseID, checkIn, checkOut, excludeID))
	if err != nil {
		return false, fmt.Errorf("failed to check overlap for house %s: %w", houseID, err)
	}
	return count > 0, nil
}
