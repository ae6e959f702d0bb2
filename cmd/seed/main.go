// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"taproom/internal/config"
	"taproom/internal/core/tx"
	"taproom/internal/domain/catalogs/beer"
	"taproom/internal/domain/catalogs/customer"
	"taproom/internal/infrastructure/storage/postgres"
	"taproom/internal/infrastructure/storage/postgres/catalog_repo"
	"taproom/pkg/logger"
)

// batchSize is the largest list the services accept in one call.
const batchSize = 100

var (
	styles    = []string{"IPA", "Pale Ale", "Stout", "Porter", "Lager", "Pilsner", "Saison", "Wheat"}
	firstName = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Ken", "Donald", "Frances"}
	lastName  = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Thompson", "Knuth", "Allen"}
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}
	ctx := logger.WithLogger(context.Background(), log)

	conf, err := config.Parse()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	beers := envInt("SEED_BEERS", 250)
	customers := envInt("SEED_CUSTOMERS", 50)

	if err := postgres.Bootstrap(ctx, conf.Database); err != nil {
		log.Fatalw("database bootstrap failed", "error", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolConfigFrom(conf.Database))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txm := postgres.NewTxManager(pool, conf.Database.StatementTimeout)
	beerService := beer.NewService(catalog_repo.NewBeerRepo(txm), conf.API.DefaultPageSize)
	customerService := customer.NewService(catalog_repo.NewCustomerRepo(txm), conf.API.DefaultPageSize)

	if err := seed(ctx, txm, beerService, customerService, beers, customers, log); err != nil {
		log.Fatalw("seeding failed, nothing was written", "error", err)
	}

	log.Info("seeding completed successfully")
}

// seed writes all demo rows in one transaction. The repositories join it
// instead of opening their own.
func seed(
	ctx context.Context,
	txm tx.Manager,
	beerService *beer.Service,
	customerService *customer.Service,
	beers, customers int,
	log *logger.Logger,
) error {
	return txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := seedBeers(ctx, beerService, beers, log); err != nil {
			return fmt.Errorf("seed beers: %w", err)
		}
		if err := seedCustomers(ctx, customerService, customers, log); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		return nil
	})
}

func seedBeers(ctx context.Context, svc *beer.Service, count int, log *logger.Logger) error {
	for done := 0; done < count; {
		n := min(batchSize, count-done)
		reqs := make([]beer.CreateRequest, n)
		for i := range reqs {
			reqs[i] = randomBeer(done + i)
		}

		if errs := beer.CreateListRules("", reqs); !errs.Valid() {
			return errs.Err()
		}
		out, err := svc.Create(ctx, reqs)
		if err != nil {
			return err
		}

		done += len(out)
		log.Infow("beers created", "batch", len(out), "total", done)
	}
	return nil
}

func seedCustomers(ctx context.Context, svc *customer.Service, count int, log *logger.Logger) error {
	for done := 0; done < count; {
		n := min(batchSize, count-done)
		reqs := make([]customer.CreateRequest, n)
		for i := range reqs {
			reqs[i] = customer.CreateRequest{Name: pick(firstName) + " " + pick(lastName)}
		}

		if errs := customer.CreateListRules("", reqs); !errs.Valid() {
			return errs.Err()
		}
		out, err := svc.Create(ctx, reqs)
		if err != nil {
			return err
		}

		done += len(out)
		log.Infow("customers created", "batch", len(out), "total", done)
	}
	return nil
}

func randomBeer(n int) beer.CreateRequest {
	style := pick(styles)
	return beer.CreateRequest{
		Name:           fmt.Sprintf("%s No. %d", style, n+1),
		Style:          style,
		UPC:            strconv.FormatInt(rand.Int64N(900_000_000_000)+100_000_000_000, 10),
		QuantityOnHand: rand.IntN(1000) + 1,
		Price:          decimal.New(rand.Int64N(5000)+100, -2),
	}
}

func pick(items []string) string {
	return items[rand.IntN(len(items))]
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
