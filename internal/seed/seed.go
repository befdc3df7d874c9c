// Package seed fills a store with generated campgrounds for local
// development.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"math/rand"

	"yelpcamp/internal/database/models"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Fixed values shared by every generated campground
const (
	DefaultCount = 50
	Image        = "https://source.unsplash.com/random/?camping"
	Description  = "lorem ipsum dolor sit amet consectetur adipisicing elit. Quisquam, quos"
)

//go:embed data.yaml
var rawData []byte

// City is one entry of the location list
type City struct {
	City  string `yaml:"city"`
	State string `yaml:"state"`
}

// Data holds the word lists campgrounds are generated from
type Data struct {
	Cities      []City   `yaml:"cities"`
	Descriptors []string `yaml:"descriptors"`
	Places      []string `yaml:"places"`
}

// LoadData decodes the embedded word lists
func LoadData() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(rawData, &d); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	if len(d.Cities) == 0 || len(d.Descriptors) == 0 || len(d.Places) == 0 {
		return nil, fmt.Errorf("seed data is incomplete")
	}
	return &d, nil
}

// Seeder replaces the contents of a store with generated campgrounds
type Seeder struct {
	repos repository.Repositories
	data  *Data
	rng   *rand.Rand
}

// NewSeeder creates a seeder drawing from rng
func NewSeeder(repos repository.Repositories, data *Data, rng *rand.Rand) *Seeder {
	return &Seeder{repos: repos, data: data, rng: rng}
}

// Generate builds one campground without storing it
func (s *Seeder) Generate() *models.Campground {
	city := s.data.Cities[s.rng.Intn(len(s.data.Cities))]
	price := math.Floor(s.rng.Float64()*20) + 10
	return &models.Campground{
		Title:       fmt.Sprintf("%s %s", sample(s.rng, s.data.Descriptors), sample(s.rng, s.data.Places)),
		Location:    fmt.Sprintf("%s, %s", city.City, city.State),
		Image:       Image,
		Description: Description,
		Price:       &price,
		Reviews:     []uuid.UUID{},
	}
}

// Run deletes every review and campground, then inserts count new ones
func (s *Seeder) Run(ctx context.Context, count int) error {
	log := logger.WithContext(ctx)

	reviews, err := s.repos.Reviews.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear reviews: %w", err)
	}
	campgrounds, err := s.repos.Campgrounds.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear campgrounds: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"reviews":     reviews,
		"campgrounds": campgrounds,
	}).Info("store cleared")

	for i := 0; i < count; i++ {
		if err := s.repos.Campgrounds.Create(ctx, s.Generate()); err != nil {
			return fmt.Errorf("failed to create campground %d: %w", i+1, err)
		}
	}

	log.WithField("count", count).Info("campgrounds seeded")
	return nil
}

func sample(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}
