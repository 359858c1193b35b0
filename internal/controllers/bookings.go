package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/middleware"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/models"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookingController handles booking creation, the caller-scoped list, and
// cancellation.
type BookingController struct {
	bookings store.BookingStore
	places   store.PlaceStore
	log      *zap.Logger
}

func NewBookingController(bookings store.BookingStore, places store.PlaceStore, log *zap.Logger) *BookingController {
	return &BookingController{bookings: bookings, places: places, log: log}
}

// BookingInput is the request body for creating a booking. The user is
// taken from the session, never from the body.
type BookingInput struct {
	Place          string  `json:"place"`
	CheckIn        string  `json:"checkIn"`
	CheckOut       string  `json:"checkOut"`
	NumberOfGuests int     `json:"numberOfGuests"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Price          float64 `json:"price"`
}

// CancelInput identifies the booking to cancel. There is deliberately no
// ownership check on cancellation; see the decision log.
type CancelInput struct {
	BookingID string `json:"bookingId"`
}

// bookingWithPlace mirrors a stored booking with its place reference
// expanded to the full document.
type bookingWithPlace struct {
	ID             primitive.ObjectID `json:"_id"`
	Place          *models.Place      `json:"place"`
	User           primitive.ObjectID `json:"user"`
	CheckIn        string             `json:"checkIn"`
	CheckOut       string             `json:"checkOut"`
	NumberOfGuests int                `json:"numberOfGuests"`
	Name           string             `json:"name"`
	Phone          string             `json:"phone"`
	Price          float64            `json:"price"`
}

// Create stores a booking for the authenticated caller. Overlapping
// bookings for the same place and dates are accepted; there is no
// double-booking detection.
func (bc *BookingController) Create(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	placeID, err := primitive.ObjectIDFromHex(input.Place)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place id"})
		return
	}

	ident := middleware.Identity(c)

	booking := models.Booking{
		Place:          placeID,
		User:           ident.ID,
		CheckIn:        input.CheckIn,
		CheckOut:       input.CheckOut,
		NumberOfGuests: input.NumberOfGuests,
		Name:           input.Name,
		Phone:          input.Phone,
		Price:          input.Price,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := bc.bookings.Create(ctx, &booking); err != nil {
		bc.log.Error("create booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create booking"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListMine returns the caller's bookings, each with the place reference
// expanded to the stored Place document.
func (bc *BookingController) ListMine(c *gin.Context) {
	ident := middleware.Identity(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bookings, err := bc.bookings.FindByUser(ctx, ident.ID)
	if err != nil {
		bc.log.Error("list bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}

	expanded := make([]bookingWithPlace, 0, len(bookings))
	for _, b := range bookings {
		place, err := bc.places.FindByID(ctx, b.Place)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			bc.log.Error("list bookings: place lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
			return
		}
		// place stays null when the listing was deleted out-of-band
		expanded = append(expanded, bookingWithPlace{
			ID:             b.ID,
			Place:          place,
			User:           b.User,
			CheckIn:        b.CheckIn,
			CheckOut:       b.CheckOut,
			NumberOfGuests: b.NumberOfGuests,
			Name:           b.Name,
			Phone:          b.Phone,
			Price:          b.Price,
		})
	}

	c.JSON(http.StatusOK, expanded)
}

// Cancel deletes a booking by id. Cancelling an unknown id is still a 200
// success with a null response; only store faults produce a 500.
func (bc *BookingController) Cancel(c *gin.Context) {
	var input CancelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(input.BookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "internal server occured during cancellation of booking",
			"error":   "invalid booking id",
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	booking, err := bc.bookings.DeleteByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"message":  "booking cancelled sucessfully",
				"response": nil,
			})
			return
		}
		bc.log.Error("cancel booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "internal server occured during cancellation of booking",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "booking cancelled sucessfully",
		"response": booking,
	})
}
