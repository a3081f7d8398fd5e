package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"hearth-home-server/models"
	"hearth-home-server/query"
	"hearth-home-server/storage"
	"hearth-home-server/utils"
)

// SearchListings handles form-based search. Every filter field is
// optional; the bedrooms param takes "0".."n" for an exact count or the
// "4+" sentinel, and minBeds sets a lower bound when no exact selector is
// given.
func SearchListings(ctx iris.Context) {
	criteria := query.FilterCriteria{
		City: ctx.URLParam("city"),
		Kind: query.ParseKind(ctx.URLParam("kind")),
	}
	if v, err := ctx.URLParamFloat64("minPrice"); err == nil {
		criteria.MinPrice = &v
	}
	if v, err := ctx.URLParamFloat64("maxPrice"); err == nil {
		criteria.MaxPrice = &v
	}

	fourPlus, exact := query.ParseBedroomParam(ctx.URLParam("bedrooms"))
	var atLeast *int
	if v, err := ctx.URLParamInt("minBeds"); err == nil && v > 0 {
		atLeast = &v
	}
	criteria.Bedrooms = query.SelectBedrooms(fourPlus, exact, atLeast)

	results, err := engine.RunQuery(ctx.Request().Context(), criteria)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(results)
}

// SearchListingsAI handles natural-language search: the translator emits
// criteria and the same engine runs the query. Translator failures fall
// back to unfiltered search, mirroring an empty criteria set.
func SearchListingsAI(ctx iris.Context) {
	var input AISearchInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	criteria := query.FilterCriteria{}
	if translator != nil {
		extracted, err := translator.ExtractFilters(ctx.Request().Context(), input.Query)
		if err != nil {
			log.Printf("filter extraction failed, running unfiltered search: %v", err)
		} else {
			criteria = extracted
		}
	}

	results, err := engine.RunQuery(ctx.Request().Context(), criteria)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"criteria": criteria, "results": results})
}

// GetListing returns one listing by id. This path bypasses the visibility
// filter so owners and moderators can still see a suspended listing.
func GetListing(ctx iris.Context) {
	id := ctx.Params().GetUintDefault("id", 0)

	listing, err := listingStore.FetchListingByID(ctx.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		utils.CreateNotFound(ctx)
		return
	}
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if err := listingStore.IncrementViews(ctx.Request().Context(), id); err != nil {
		log.Printf("failed to increment views for listing %d: %v", id, err)
	}

	ctx.JSON(listing)
}

func CreateListing(ctx iris.Context) {
	var input CreateListingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	claims := jwt.Get(ctx).(*utils.AccessToken)

	amenities := input.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	amenitiesJSON, _ := json.Marshal(amenities)

	images := input.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, _ := json.Marshal(images)

	description := input.Description
	if description == "" && describer != nil {
		generated, err := describer.GenerateListingDescription(
			ctx.Request().Context(), amenities, models.ListingKind(input.Kind), input.City)
		if err != nil {
			log.Printf("description generation failed: %v", err)
		} else {
			description = generated
		}
	}

	listing := models.Listing{
		CreatorID:   claims.ID,
		Title:       input.Title,
		Description: description,
		Price:       input.Price,
		Kind:        models.ListingKind(input.Kind),
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Sqft:        input.Sqft,
		Amenities:   amenitiesJSON,
		Images:      string(imagesJSON),
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		Zip:         input.Zip,
		Lat:         input.Lat,
		Lng:         input.Lng,
	}

	if err := listingStore.Insert(ctx.Request().Context(), &listing); err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "failed to create listing")
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&listing)
}

// ReportListing files an abuse report. One report per user per listing per
// day is accepted; beyond that the moderation machine owns the count and
// the automatic suspension at the threshold.
func ReportListing(ctx iris.Context) {
	id := ctx.Params().GetUintDefault("id", 0)
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input ReportListingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if storage.Redis != nil {
		key := fmt.Sprintf("report:%d:%d", id, claims.ID)
		set, err := storage.Redis.SetNX(ctx.Request().Context(), key, "1", 24*time.Hour).Result()
		if err == nil && !set {
			utils.JSONError(ctx, iris.StatusTooManyRequests, "already_reported", "you have already reported this listing")
			return
		}
	}

	listing, err := moderator.ReportListing(ctx.Request().Context(), id, claims.ID, input.Reason)
	if errors.Is(err, storage.ErrNotFound) {
		utils.CreateNotFound(ctx)
		return
	}
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(listing)
}

type AISearchInput struct {
	Query string `json:"query" validate:"required,max=500"`
}

type CreateListingInput struct {
	Title       string   `json:"title" validate:"required,max=256"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Kind        string   `json:"kind" validate:"required,oneof=sale rent"`
	Bedrooms    int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms   float32  `json:"bathrooms" validate:"gte=0"`
	Sqft        float32  `json:"sqft" validate:"gte=0"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Address     string   `json:"address"`
	City        string   `json:"city" validate:"required,max=128"`
	State       string   `json:"state" validate:"max=128"`
	Zip         string   `json:"zip" validate:"max=32"`
	Lat         float32  `json:"lat"`
	Lng         float32  `json:"lng"`
}

type ReportListingInput struct {
	Reason string `json:"reason" validate:"required,max=500"`
}
