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

// PlaceController handles listing CRUD. Creation and mutation require a
// session; reads are public.
type PlaceController struct {
	places store.PlaceStore
	log    *zap.Logger
}

func NewPlaceController(places store.PlaceStore, log *zap.Logger) *PlaceController {
	return &PlaceController{places: places, log: log}
}

// PlaceInput is the request body for creating a place. The photo list
// arrives under "addedPhotos".
type PlaceInput struct {
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	AddedPhotos []string `json:"addedPhotos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     int      `json:"checkIn"`
	CheckOut    int      `json:"checkOut"`
	MaxGuests   int      `json:"maxGuests"`
	Price       int      `json:"price"`
}

// UpdatePlaceInput carries the place id in the body, not the path.
type UpdatePlaceInput struct {
	ID string `json:"id"`
	PlaceInput
}

// Create stores a new place owned by the authenticated caller.
func (pc *PlaceController) Create(c *gin.Context) {
	var input PlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident := middleware.Identity(c)

	place := models.Place{
		Owner:       ident.ID,
		Title:       input.Title,
		Address:     input.Address,
		Photos:      input.AddedPhotos,
		Description: input.Description,
		Perks:       input.Perks,
		ExtraInfo:   input.ExtraInfo,
		CheckIn:     input.CheckIn,
		CheckOut:    input.CheckOut,
		MaxGuests:   input.MaxGuests,
		Price:       input.Price,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pc.places.Create(ctx, &place); err != nil {
		pc.log.Error("create place failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create place"})
		return
	}

	c.JSON(http.StatusOK, place)
}

// ListMine returns every place owned by the authenticated caller.
func (pc *PlaceController) ListMine(c *gin.Context) {
	ident := middleware.Identity(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	places, err := pc.places.FindByOwner(ctx, ident.ID)
	if err != nil {
		pc.log.Error("list user places failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch places"})
		return
	}

	c.JSON(http.StatusOK, places)
}

// GetByID is public. A missing place answers 200 null, not 404.
func (pc *PlaceController) GetByID(c *gin.Context) {
	placeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	place, err := pc.places.FindByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		pc.log.Error("get place failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch place"})
		return
	}

	c.JSON(http.StatusOK, place)
}

// ListAll returns every place, unpaginated.
func (pc *PlaceController) ListAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	places, err := pc.places.FindAll(ctx)
	if err != nil {
		pc.log.Error("list places failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch places"})
		return
	}

	c.JSON(http.StatusOK, places)
}

// Update applies field updates to a place; only the owner may do so.
func (pc *PlaceController) Update(c *gin.Context) {
	var input UpdatePlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	placeID, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place id"})
		return
	}

	ident := middleware.Identity(c)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	place, err := pc.places.FindByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
			return
		}
		pc.log.Error("update place: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch place"})
		return
	}

	// permission check: owner ids compare as ObjectID values
	if place.Owner != ident.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the owner can modify this place"})
		return
	}

	place.Title = input.Title
	place.Address = input.Address
	place.Photos = input.AddedPhotos
	place.Description = input.Description
	place.Perks = input.Perks
	place.ExtraInfo = input.ExtraInfo
	place.CheckIn = input.CheckIn
	place.CheckOut = input.CheckOut
	place.MaxGuests = input.MaxGuests
	place.Price = input.Price

	if err := pc.places.Update(ctx, place); err != nil {
		pc.log.Error("update place failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, "ok")
}
