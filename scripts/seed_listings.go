package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"hearth-home-server/models"
	"hearth-home-server/storage"
)

// Seeds the demo agent and the 16-listing demo data set.
func main() {
	godotenv.Load()
	db := storage.InitializeDB()

	agent := models.User{
		FirstName: "Demo",
		LastName:  "Agent",
		Email:     "demo@agent.com",
		AvatarURL: "https://picsum.photos/id/64/100/100",
		Role:      "agent",
	}
	if err := db.Where(models.User{Email: agent.Email}).FirstOrCreate(&agent).Error; err != nil {
		log.Fatalf("error seeding demo agent: %v", err)
	}

	store := storage.NewGormListingStore(db)
	fixtures := storage.FixtureListings(agent.ID, time.Now())
	for i := range fixtures {
		listing := fixtures[i]
		listing.ID = 0 // let the database assign ids
		if err := store.Insert(context.Background(), &listing); err != nil {
			log.Fatalf("error seeding listing %q: %v", listing.Title, err)
		}
	}

	fmt.Printf("Seeded %d listings\n", len(fixtures))
}
