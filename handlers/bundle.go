package handlers

// HandlerBundle aggregates all HTTP handlers so route registration can
// take a single dependency.
type HandlerBundle struct {
	Booking *BookingHandler
	Review  *ReviewHandler
	House   *HouseHandler
	Storage *StorageHandler
	User    *UserHandler
}
