package booking

import (
	"context"

	"stayhaven/models"

	"go.uber.org/zap"
)

// ConfirmPayment authenticates a payment provider callback and, on
// success, atomically promotes the booking to Confirmed/Paid. A repeat
// callback for an already-confirmed payment is an idempotent success
// and does not notify again.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, bookingID, paymentID, signature string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Default-deny: ambiguous or missing fields never verify.
	if !s.Gateway.VerifySignature(b.RazorpayOrderID, paymentID, signature) {
		// Security-relevant; logged distinctly, response stays generic.
		s.Logger.Warn("payment signature verification failed",
			zap.String("bookingId", bookingID),
			zap.String("orderId", b.RazorpayOrderID))
		return nil, &SignatureError{}
	}

	transitioned, err := s.Repo.ConfirmPayment(ctx, bookingID, paymentID, signature)
	if err != nil {
		return nil, err
	}

	if !transitioned {
		// Lost the conditional update: the booking left Pending before
		// this callback landed. Decide idempotent success vs conflict
		// from the current state.
		current, err := s.GetBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		switch current.BookingStatus {
		case models.BookingStatusConfirmed, models.BookingStatusCompleted:
			if current.RazorpayPaymentID == paymentID {
				return current, nil
			}
			return nil, &ConflictError{Message: "booking already confirmed with a different payment"}
		case models.BookingStatusCancelled:
			return nil, &ConflictError{Message: "booking has been cancelled"}
		default:
			return nil, &ConflictError{Message: "booking state changed, retry confirmation"}
		}
	}

	confirmed, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		// The transition committed; return what we know.
		b.BookingStatus = models.BookingStatusConfirmed
		b.PaymentStatus = models.PaymentStatusPaid
		b.RazorpayPaymentID = paymentID
		confirmed = b
	}

	s.Logger.Info("payment verified, booking confirmed",
		zap.String("bookingId", bookingID),
		zap.String("paymentId", paymentID))

	if s.Dispatcher != nil {
		s.Dispatcher.DispatchUserPush(ctx, models.PushPayload{
			UserID: confirmed.UserID,
			Title:  "Booking Confirmed",
			Body:   "Your booking has been confirmed. Enjoy your stay!",
			Data: map[string]string{
				"type":      "booking_confirmed",
				"bookingId": confirmed.ID,
			},
		})
	}

	return confirmed, nil
}
