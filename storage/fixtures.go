package storage

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hearth-home-server/models"
)

func jsonArray(items ...string) datatypes.JSON {
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

func imageList(urls ...string) string {
	b, _ := json.Marshal(urls)
	return string(b)
}

// FixtureListings is the demo data set: four bedsitters, four one-beds,
// four two-beds and four three-beds, created in that order from newest to
// oldest relative to base. Used by the seeding script and the engine
// tests.
func FixtureListings(creatorID uint, base time.Time) []models.Listing {
	at := func(id uint, offset time.Duration) gorm.Model {
		return gorm.Model{ID: id, CreatedAt: base.Add(-offset)}
	}

	return []models.Listing{
		// Bedsitters (studios)
		{
			Model: at(1, 0), CreatorID: creatorID, Kind: models.KindRent,
			Title:       "Cozy Downtown Bedsitter",
			Description: "Efficient bedsitter unit perfect for a student or young professional. Includes kitchenette and shared laundry.",
			Price:       800, Bedrooms: 0, Bathrooms: 1, Sqft: 350,
			Amenities: jsonArray("WiFi", "Shared Laundry", "Furnished"),
			Images:    imageList("https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800", "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800"),
			Address:   "101 Studio Ln", City: "New York", State: "NY", Zip: "10001", Lat: 40.7128, Lng: -74.0060,
			Status: models.StatusActive,
		},
		{
			Model: at(2, 10*time.Second), CreatorID: creatorID, Kind: models.KindRent,
			Title:       "Modern Micro-Studio",
			Description: "Compact living at its finest. This bedsitter features smart storage solutions and a fold-away Murphy bed.",
			Price:       950, Bedrooms: 0, Bathrooms: 1, Sqft: 300,
			Amenities: jsonArray("Smart Home", "Bike Storage", "Gym"),
			Images:    imageList("https://images.unsplash.com/photo-1536376072261-38c75010e6c9?w=800", "https://images.unsplash.com/photo-1554995207-c18c203602cb?w=800"),
			Address:   "55 Micro St", City: "Los Angeles", State: "CA", Zip: "90012", Lat: 34.0522, Lng: -118.2437,
			Status: models.StatusActive,
		},
		{
			Model: at(3, 20*time.Second), CreatorID: creatorID, Kind: models.KindRent,
			Title:       "Sunny Garden Bedsitter",
			Description: "A bright and airy bedsitter with direct access to a community garden. Quiet neighborhood.",
			Price:       750, Bedrooms: 0, Bathrooms: 1, Sqft: 400,
			Amenities: jsonArray("Garden Access", "Pet Friendly", "Parking"),
			Images:    imageList("https://images.unsplash.com/photo-1493809842364-78817add7ffb?w=800", "https://images.unsplash.com/photo-1505693314120-0d443867891c?w=800"),
			Address:   "88 Green Way", City: "Austin", State: "TX", Zip: "78701", Lat: 30.2672, Lng: -97.7431,
			Status: models.StatusActive,
		},
		{
			Model: at(4, 30*time.Second), CreatorID: creatorID, Kind: models.KindRent,
			Title:       "Industrial Loft Bedsitter",
			Description: "Converted warehouse space with high ceilings and exposed brick. Open plan bedsitter layout.",
			Price:       1100, Bedrooms: 0, Bathrooms: 1, Sqft: 500,
			Amenities: jsonArray("Elevator", "Roof Deck", "AC"),
			Images:    imageList("https://images.unsplash.com/photo-1600607686527-6fb886090705?w=800", "https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=800"),
			Address:   "404 Brick Rd", City: "Chicago", State: "IL", Zip: "60601", Lat: 41.8781, Lng: -87.6298,
			Status: models.StatusActive,
		},

		// One bedrooms
		{
			Model: at(5, 40*time.Second), CreatorID: creatorID, Kind: models.KindSale,
			Title:       "Chic City 1-Bed Apartment",
			Description: "Beautifully renovated 1-bedroom apartment in the heart of the business district. Great investment.",
			Price:       350000, Bedrooms: 1, Bathrooms: 1, Sqft: 750,
			Amenities: jsonArray("Balcony", "Concierge", "Pool"),
			Images:    imageList("https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=800", "https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?w=800"),
			Address:   "12 Palm Blvd", City: "Miami", State: "FL", Zip: "33101", Lat: 25.7617, Lng: -80.1918,
			Status: models.StatusActive,
		},
		{
			Model: at(6, 50*time.Second), CreatorID: creatorID, Kind: models.KindRent,
			Title:       "Spacious 1-Bedroom Condo",
			Description: "Large 1-bedroom unit with a walk-in closet and updated kitchen appliances.",
			Price:       1800, Bedrooms: 1, Bathrooms: 1.5, Sqft: 850,
			Amenities: jsonArray("Dishwasher", "In-unit Laundry", "Gym"),
			Images:    imageList("https://images.unsplash.com/photo-1502005229762-cf1b2da7c5d6?w=800", "https://images.unsplash.com/photo-1484101403633-562f891dc89a?w=800"),
			Address:   "303 Rain St", City: "Seattle", State: "WA", Zip: "98101", Lat: 47.6062, Lng: -122.3321,
			Status: models.StatusActive,
		},
		{
			Model: at(7, 60*time.Second), CreatorID: creatorID, Kind: models.KindRent,
			Title:       "Vintage 1-Bed Walkup",
			Description: "Charming 1-bedroom in a historic building. Hardwood floors and original crown molding.",
			Price:       1500, Bedrooms: 1, Bathrooms: 1, Sqft: 700,
			Amenities: jsonArray("Hardwood Floors", "Cat Friendly", "Heat Included"),
			Images:    imageList("https://images.unsplash.com/photo-1499916078039-922301b0eb9b?w=800", "https://images.unsplash.com/photo-1503174971373-b1f69850bded?w=800"),
			Address:   "76 Old Town", City: "Boston", State: "MA", Zip: "02108", Lat: 42.3601, Lng: -71.0589,
			Status: models.StatusActive,
		},
		{
			Model: at(8, 70*time.Second), CreatorID: creatorID, Kind: models.KindSale,
			Title:       "Luxury 1-Bed Highrise",
			Description: "Stunning views from the 30th floor. This 1-bedroom features floor-to-ceiling windows and premium finishes.",
			Price:       550000, Bedrooms: 1, Bathrooms: 1, Sqft: 900,
			Amenities: jsonArray("Doorman", "Valet", "Spa"),
			Images:    imageList("https://images.unsplash.com/photo-1515263487990-61b07816b324?w=800", "https://images.unsplash.com/photo-1522050212171-61b01dd24579?w=800"),
			Address:   "99 Cloud Way", City: "San Francisco", State: "CA", Zip: "94105", Lat: 37.7749, Lng: -122.4194,
			Featured: true,
			Status:   models.StatusActive,
		},

		// Two bedrooms
		{
			Model: at(9, 80*time.Second), CreatorID: creatorID, Kind: models.KindSale,
			Title:       "Modern 2-Bed Townhouse",
			Description: "Two-story townhouse with a private patio and attached garage. Ideal for small families.",
			Price:       420000, Bedrooms: 2, Bathrooms: 2, Sqft: 1200,
			Amenities: jsonArray("Garage", "Patio", "Stainless Steel"),
			Images:    imageList("https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800", "https://images.unsplash.com/photo-1560185127-6ed189bf02f4?w=800"),
			Address:   "22 Mountain View", City: "Denver", State: "CO", Zip: "80202", Lat: 39.7392, Lng: -104.9903,
			Status: models.StatusActive,
		},
		{
			Model: at(10, 90*time.Second), CreatorID: creatorID, Kind: models.KindRent,
			Title:       "2-Bedroom Garden Apartment",
			Description: "Quiet 2-bedroom unit in a garden complex. Features a renovated kitchen and large living area.",
			Price:       2100, Bedrooms: 2, Bathrooms: 1.5, Sqft: 1100,
			Amenities: jsonArray("Pool", "Tennis Court", "Playground"),
			Images:    imageList("https://images.unsplash.com/photo-1560185007-cde436f6a4d0?w=800", "https://images.unsplash.com/photo-1484154218962-a1c002085d2f?w=800"),
			Address:   "88 Cactus Dr", City: "Phoenix", State: "AZ", Zip: "85001", Lat: 33.4484, Lng: -112.0740,
			Status: models.StatusActive,
		},
		{
			Model: at(11, 100*time.Second), CreatorID: creatorID, Kind: models.KindSale,
			Title:       "Historic 2-Bed Bungalow",
			Description: "Charming bungalow with original details, large front porch, and updated systems.",
			Price:       380000, Bedrooms: 2, Bathrooms: 1, Sqft: 1000,
			Amenities: jsonArray("Porch", "Fireplace", "Fenced Yard"),
			Images:    imageList("https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800", "https://images.unsplash.com/photo-1576941089067-2de3c901e126?w=800"),
			Address:   "45 Music Row", City: "Nashville", State: "TN", Zip: "37203", Lat: 36.1627, Lng: -86.7816,
			Status: models.StatusActive,
		},
		{
			Model: at(12, 110*time.Second), CreatorID: creatorID, Kind: models.KindRent,
			Title:       "Sleek 2-Bed Condo",
			Description: "Contemporary 2-bedroom condo with floor-to-ceiling glass and high-end finishes.",
			Price:       2800, Bedrooms: 2, Bathrooms: 2, Sqft: 1300,
			Amenities: jsonArray("Gym", "Concierge", "Rooftop"),
			Images:    imageList("https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800", "https://images.unsplash.com/photo-1512915922686-57c11dde9b6b?w=800"),
			Address:   "909 Elm St", City: "Dallas", State: "TX", Zip: "75201", Lat: 32.7767, Lng: -96.7970,
			Status: models.StatusActive,
		},

		// Three bedrooms
		{
			Model: at(13, 120*time.Second), CreatorID: creatorID, Kind: models.KindSale,
			Title:       "Spacious 3-Bed Family Home",
			Description: "Large 3-bedroom house in a great school district. Features a huge backyard and open kitchen.",
			Price:       650000, Bedrooms: 3, Bathrooms: 2.5, Sqft: 2200,
			Amenities: jsonArray("Backyard", "School District", "Double Garage"),
			Images:    imageList("https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=800", "https://images.unsplash.com/photo-1556912173-3db9963ee790?w=800"),
			Address:   "50 Peach Tree", City: "Atlanta", State: "GA", Zip: "30303", Lat: 33.7490, Lng: -84.3880,
			Status: models.StatusActive,
		},
		{
			Model: at(14, 130*time.Second), CreatorID: creatorID, Kind: models.KindRent,
			Title:       "3-Bed Penthouse Suite",
			Description: "Exclusive penthouse with 3 bedrooms, wrap-around balcony, and panoramic city views.",
			Price:       6000, Bedrooms: 3, Bathrooms: 3, Sqft: 2500,
			Amenities: jsonArray("Penthouse", "Views", "Private Elevator"),
			Images:    imageList("https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800", "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800"),
			Address:   "1 Park Ave", City: "New York", State: "NY", Zip: "10016", Lat: 40.7128, Lng: -74.0060,
			Featured: true,
			Status:   models.StatusActive,
		},
		{
			Model: at(15, 140*time.Second), CreatorID: creatorID, Kind: models.KindSale,
			Title:       "Renovated 3-Bed Farmhouse",
			Description: "Beautifully updated farmhouse on 2 acres of land. 3 bedrooms, modern kitchen, and rustic charm.",
			Price:       450000, Bedrooms: 3, Bathrooms: 2, Sqft: 2000,
			Amenities: jsonArray("Acreage", "Barn", "Renovated"),
			Images:    imageList("https://images.unsplash.com/photo-1516156008625-3a9d6067fab5?w=800", "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800"),
			Address:   "888 Country Rd", City: "Portland", State: "OR", Zip: "97204", Lat: 45.5051, Lng: -122.6750,
			Status: models.StatusActive,
		},
		{
			Model: at(16, 150*time.Second), CreatorID: creatorID, Kind: models.KindRent,
			Title:       "3-Bedroom Suburban Retreat",
			Description: "Quiet suburban home with 3 bedrooms, perfect for a growing family. Close to parks and shops.",
			Price:       2400, Bedrooms: 3, Bathrooms: 2, Sqft: 1800,
			Amenities: jsonArray("Quiet Street", "Deck", "Central Air"),
			Images:    imageList("https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800", "https://images.unsplash.com/photo-1598228723793-52759bba239c?w=800"),
			Address:   "777 Oak Ln", City: "Charlotte", State: "NC", Zip: "28202", Lat: 35.2271, Lng: -80.8431,
			Status: models.StatusActive,
		},
	}
}
