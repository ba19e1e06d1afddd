package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/avasilyev/blogd/internal/common/logger"
)

// Connect dials the document store and blocks until it answers a ping,
// retrying for a while before giving up. Callers own Disconnect.
func Connect(log *logger.Logger, mongoURL string) *mongo.Client {
	opts := options.Client().
		ApplyURI(mongoURL).
		SetAppName("blogd").
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Minute)

	const maxAttempts = 10
	const delay = time.Second

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
		}
		cancel()

		if err == nil {
			log.Infof("document store connection initialized: max_pool=25, min_pool=5")
			return client
		}

		log.Warnf("failed to connect to document store (attempt %d/%d): %v", attempt, maxAttempts, err)

		if attempt == maxAttempts {
			log.Fatalf("failed to connect to document store after %d attempts: %v", maxAttempts, err)
			return nil
		}

		time.Sleep(delay)
	}

	log.Fatalf("failed to connect to document store after %d attempts", maxAttempts)
	return nil
}
