package booking

import (
	"math"
	"time"
)

// Nights returns the number of chargeable nights for the half-open stay
// [checkIn, checkOut), rounding partial days up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// TotalAmount prices a stay. The rate scales with headcount as well as
// nights: a party of four pays four times the nightly rate. This is the
// established product rule; every quoted amount depends on it.
func TotalAmount(pricePerNight float64, nights, totalGuests int) float64 {
	return pricePerNight * float64(nights) * float64(totalGuests)
}
