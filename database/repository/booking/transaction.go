package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfAvailable inserts the booking only if its interval is still
// free. The overlap check and the insert run in one multi-document
// transaction so two concurrent requests for intersecting ranges cannot
// both observe "no overlap" and both commit.
func (r *MongoBookingRepo) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(booking.HouseID, booking.CheckIn, booking.CheckOut, ""))
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if count > 0 {
			return ErrIntervalTaken
		}
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrIntervalTaken) {
			return err
		}
		// A write conflict means a concurrent booking committed first;
		// the interval is taken from the caller's point of view.
		if mongo.IsDuplicateKeyError(err) || hasWriteConflict(err) {
			return ErrIntervalTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}

// hasWriteConflict reports whether the error carries the transient
// transaction label Mongo attaches on serialization conflicts.
func hasWriteConflict(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError")
	}
	return false
}

// ConfirmPayment flips a Pending booking to Confirmed/Paid in a single
// conditional update. The filter pins the source state, so a provider
// retry or a race with cancellation matches zero documents.
func (r *MongoBookingRepo) ConfirmPayment(ctx context.Context, bookingID, paymentID, signature string) (bool, error) {
	filter := bson.M{
		"id":             bookingID,
		"booking_status": models.BookingStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"booking_status":      models.BookingStatusConfirmed,
			"payment_status":      models.PaymentStatusPaid,
			"razorpay_payment_id": paymentID,
			"razorpay_signature":  signature,
			"updated_at":          time.Now(),
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to confirm payment for booking %s: %w", bookingID, err)
	}
	return res.ModifiedCount == 1, nil
}

// MarkCancelled releases a booking's interval by moving it to Cancelled.
// Completed and already-Cancelled bookings are left untouched.
func (r *MongoBookingRepo) MarkCancelled(ctx context.Context, bookingID string) (bool, error) {
	filter := bson.M{
		"id": bookingID,
		"booking_status": bson.M{
			"$in": []string{models.BookingStatusPending, models.BookingStatusConfirmed},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"booking_status": models.BookingStatusCancelled,
			"updated_at":     time.Now(),
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	return res.ModifiedCount == 1, nil
}

// completionFilter is the single source of truth for the
// Confirmed-to-Completed transition, shared by the bulk sweep and the
// lazy single-booking promotion.
func completionFilter(now time.Time) bson.M {
	return bson.M{
		"booking_status": models.BookingStatusConfirmed,
		"check_out":      bson.M{"$lt": now},
	}
}

// CompletePastCheckout promotes all Confirmed bookings whose checkout
// has passed. Re-running with nothing eligible is a no-op.
func (r *MongoBookingRepo) CompletePastCheckout(ctx context.Context, now time.Time) (int64, error) {
	update := bson.M{
		"$set": bson.M{
			"booking_status": models.BookingStatusCompleted,
			"updated_at":     now,
		},
	}
	res, err := r.coll.UpdateMany(ctx, completionFilter(now), update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past-checkout bookings: %w", err)
	}
	return res.ModifiedCount, nil
}

// CompleteIfPastCheckout applies the completion transition to one booking.
func (r *MongoBookingRepo) CompleteIfPastCheckout(ctx context.Context, bookingID string, now time.Time) (bool, error) {
	filter := completionFilter(now)
	filter["id"] = bookingID
	update := bson.M{
		"$set": bson.M{
			"booking_status": models.BookingStatusCompleted,
			"updated_at":     now,
		},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to complete booking %s: %w", bookingID, err)
	}
	return res.ModifiedCount == 1, nil
}
