package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"yelpcamp/internal/config"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/seed"
	"yelpcamp/internal/store"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	count := flag.Int("count", seed.DefaultCount, "number of campgrounds to generate")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load config: ", err)
	}
	logger.Setup(cfg.LogLevel, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to open store: ", err)
	}

	data, err := seed.LoadData()
	if err != nil {
		_ = st.Close(ctx)
		logrus.Fatal(err)
	}

	seeder := seed.NewSeeder(st.Repositories(), data, rand.New(rand.NewSource(time.Now().UnixNano())))
	runErr := seeder.Run(ctx, *count)

	// close before exiting so the script never hangs on an open connection
	if err := st.Close(ctx); err != nil {
		logrus.WithError(err).Error("Failed to close store")
	}
	if runErr != nil {
		logrus.Fatal("Failed to seed campgrounds: ", runErr)
	}
	logrus.WithField("count", *count).Info("Database seeded")
}
