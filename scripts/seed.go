package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/database"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/search"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	var searchRepo *search.TypesenseAdapter
	if err == nil {
		if err := tsClient.InitSchema(context.Background()); err != nil {
			log.Printf("Failed to init search schema: %v", err)
		}
		searchRepo = search.NewTypesenseAdapter(tsClient)
	} else {
		log.Printf("Typesense unavailable, seeding database only: %v", err)
	}

	schoolRepo := database.NewSchoolAdapter(pgClient)
	reviewRepo := database.NewReviewAdapter(pgClient)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				reviews,
				schools
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	now := time.Now()

	schools := []entities.School{
		{
			ID:   uuid.New().String(),
			Name: "Lincoln Elementary School",
			Address: entities.Address{
				Street: "742 Evergreen Terrace", City: "Springfield", State: "IL", ZipCode: "62704",
			},
			Phone:       "(217) 555-0114",
			Website:     "https://lincoln.springfield.k12.il.us",
			Description: "A neighborhood elementary school with a strong arts program and small class sizes.",
			SchoolType:  "public",
			GradeLevels: "K-5",
			Ratings: entities.Ratings{
				Overall: 4.3, Academics: 4.5, Facilities: 3.8, Teachers: 4.6, Safety: 4.4, Extracurriculars: 4.0,
			},
			TotalReviews: 182,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:   uuid.New().String(),
			Name: "Oakwood High School",
			Address: entities.Address{
				Street: "1200 Oakwood Avenue", City: "Springfield", State: "IL", ZipCode: "62702",
			},
			Phone:       "(217) 555-0178",
			Website:     "https://oakwood.springfield.k12.il.us",
			Description: "Comprehensive public high school known for its STEM track and athletics.",
			SchoolType:  "public",
			GradeLevels: "9-12",
			Ratings: entities.Ratings{
				Overall: 4.0, Academics: 4.2, Facilities: 4.1, Teachers: 3.9, Safety: 3.8, Extracurriculars: 4.5,
			},
			TotalReviews: 431,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:   uuid.New().String(),
			Name: "St. Catherine Academy",
			Address: entities.Address{
				Street: "45 Cathedral Lane", City: "Riverton", State: "IL", ZipCode: "62561",
			},
			Phone:       "(217) 555-0021",
			Website:     "https://stcatherineacademy.org",
			Description: "Private K-8 academy with a classical curriculum and daily enrichment blocks.",
			SchoolType:  "private",
			GradeLevels: "K-8",
			Ratings: entities.Ratings{
				Overall: 4.7, Academics: 4.8, Facilities: 4.5, Teachers: 4.7, Safety: 4.8, Extracurriculars: 4.2,
			},
			TotalReviews: 96,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:   uuid.New().String(),
			Name: "Prairie Winds Charter School",
			Address: entities.Address{
				Street: "310 Meadowbrook Road", City: "Chatham", State: "IL", ZipCode: "62629",
			},
			Phone:       "(217) 555-0169",
			Website:     "https://prairiewindscharter.org",
			Description: "Project-based charter school serving middle grades with an outdoor learning campus.",
			SchoolType:  "charter",
			GradeLevels: "6-8",
			Ratings: entities.Ratings{
				Overall: 4.1, Academics: 4.0, Facilities: 3.6, Teachers: 4.4, Safety: 4.2, Extracurriculars: 3.9,
			},
			TotalReviews: 57,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:   uuid.New().String(),
			Name: "Jefferson Magnet School for the Arts",
			Address: entities.Address{
				Street: "88 Harmony Boulevard", City: "Springfield", State: "IL", ZipCode: "62703",
			},
			Phone:       "(217) 555-0233",
			Website:     "https://jeffersonarts.springfield.k12.il.us",
			Description: "Magnet school offering audition-based visual and performing arts programs.",
			SchoolType:  "magnet",
			GradeLevels: "6-12",
			Ratings: entities.Ratings{
				Overall: 4.5, Academics: 4.3, Facilities: 4.6, Teachers: 4.5, Safety: 4.3, Extracurriculars: 4.9,
			},
			TotalReviews: 210,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	for i := range schools {
		s := schools[i]
		if err := schoolRepo.Create(ctx, &s); err != nil {
			log.Printf("Failed to create school %s: %v", s.Name, err)
			continue
		}
		if searchRepo != nil {
			if err := searchRepo.Index(ctx, &s); err != nil {
				log.Printf("Failed to index school %s: %v", s.Name, err)
			}
		}
	}

	// A few reviews on the first school so the detail page has content.
	gradYear := 2019
	reviews := []entities.Review{
		{
			ID:       uuid.New().String(),
			SchoolID: schools[0].ID,
			UserID:   uuid.New().String(),
			Ratings: entities.Ratings{
				Overall: 5, Academics: 5, Facilities: 4, Teachers: 5, Safety: 5, Extracurriculars: 4,
			},
			Title:          "Wonderful teachers",
			Content:        "Both of our kids have thrived here. Communication from the classroom is excellent.",
			Pros:           "Caring staff, strong reading program",
			Cons:           "Parking at pickup is tight",
			WouldRecommend: true,
			Relationship:   "parent",
			CreatedAt:      now.Add(-30 * 24 * time.Hour),
		},
		{
			ID:       uuid.New().String(),
			SchoolID: schools[0].ID,
			UserID:   uuid.New().String(),
			Ratings: entities.Ratings{
				Overall: 3, Academics: 4, Facilities: 3, Teachers: 4, Safety: 4, Extracurriculars: 2,
			},
			Title:          "Solid academics, few clubs",
			Content:        "Strong core subjects but the after-school offerings are thin compared to nearby schools.",
			WouldRecommend: true,
			GraduationYear: &gradYear,
			Relationship:   "alum",
			CreatedAt:      now.Add(-12 * 24 * time.Hour),
		},
	}

	for i := range reviews {
		r := reviews[i]
		if err := reviewRepo.Create(ctx, &r); err != nil {
			log.Printf("Failed to create review %q: %v", r.Title, err)
		}
	}

	log.Printf("Seeding complete: %d schools, %d reviews", len(schools), len(reviews))
}
