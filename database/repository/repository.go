package repository

import (
	bookingRepo "stayhaven/database/repository/booking"
	houseRepo "stayhaven/database/repository/house"
	reviewRepo "stayhaven/database/repository/review"
	userRepo "stayhaven/database/repository/user"
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the HouseRepository interface and constructor.
type HouseRepository = houseRepo.HouseRepository

var NewMongoHouseRepo = houseRepo.NewMongoHouseRepo

// Re-export the ReviewRepository interface and constructor.
type ReviewRepository = reviewRepo.ReviewRepository

var NewMongoReviewRepo = reviewRepo.NewMongoReviewRepo

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo
