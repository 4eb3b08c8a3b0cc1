// Command seeder loads a demo catalog into the store so the search API has
// something to resolve against in local environments.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/gearstack/catsearch/internal/db"
	dbBadger "github.com/gearstack/catsearch/internal/db/badger"
	dbRedis "github.com/gearstack/catsearch/internal/db/redis"
	domcat "github.com/gearstack/catsearch/internal/domain/catalog"
	logpkg "github.com/gearstack/catsearch/internal/logger"
	catalogrepo "github.com/gearstack/catsearch/internal/repository/catalog"
)

func main() {
	app := &cli.App{
		Name:  "seeder",
		Usage: "load a demo catalog into the catsearch store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "driver",
				Usage: "storage driver: redis or badger",
				Value: "redis",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "redis address",
				Value: "localhost:6379",
			},
			&cli.StringFlag{
				Name:  "password",
				Usage: "redis password",
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "badger database directory",
				Value: "./data/catsearch",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "key prefix",
				Value: catalogrepo.DefaultKeyPrefix,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "seeder:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, err := logpkg.NewLogger("local")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var store db.Store
	switch c.String("driver") {
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    []string{c.String("addr")},
			Password: c.String("password"),
		})
	case "badger":
		store, err = dbBadger.NewStore(dbBadger.Config{
			Path:   c.String("path"),
			Logger: logger,
		})
	default:
		return fmt.Errorf("unknown driver %q", c.String("driver"))
	}
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, 10*time.Second); err != nil {
		return err
	}

	repo := catalogrepo.New(store).WithKeyPrefix(c.String("prefix"))
	n, err := seed(ctx, repo)
	if err != nil {
		return err
	}

	logger.Info("Demo catalog loaded", zap.Int("records", n))
	return nil
}

// fixture describes one brand subtree of the demo catalog.
type fixture struct {
	brand   string
	typeTag string
	models  []modelFixture
}

type modelFixture struct {
	name     string
	variants []variantFixture
}

type variantFixture struct {
	name     string
	products []productFixture
}

type productFixture struct {
	name  string
	price float64
	tags  []string
}

var demo = []fixture{
	{
		brand: "Honda", typeTag: "car",
		models: []modelFixture{
			{name: "City", variants: []variantFixture{
				{name: "VDI", products: []productFixture{
					{name: "City VDI Floor Mats", price: 1499, tags: []string{"mats", "interior", "floor"}},
					{name: "City VDI Seat Cover Set", price: 4299, tags: []string{"seat", "cover", "interior"}},
					{name: "City VDI Alloy Wheels 16in", price: 21999, tags: []string{"alloy", "wheel", "rim"}},
				}},
				{name: "VXI", products: []productFixture{
					{name: "City VXI Mud Flaps", price: 899, tags: []string{"mud", "flap", "exterior"}},
				}},
			}},
			{name: "Amaze", variants: []variantFixture{
				{name: "S Petrol", products: []productFixture{
					{name: "Amaze Body Cover", price: 1799, tags: []string{"cover", "body", "exterior"}},
				}},
			}},
		},
	},
	{
		brand: "TVS", typeTag: "bike",
		models: []modelFixture{
			{name: "Apache", variants: []variantFixture{
				{name: "RTR 160", products: []productFixture{
					{name: "Apache RTR 160 Chain Kit", price: 2199, tags: []string{"chain", "sprocket", "drive"}},
				}},
				{name: "RTR 200", products: []productFixture{
					{name: "Apache RTR 200 Tank Pad", price: 499, tags: []string{"tank", "pad", "spark"}},
					{name: "Apache RTR 200 Crash Guard", price: 1899, tags: []string{"crash", "guard", "frame"}},
				}},
			}},
			{name: "Jupiter", variants: []variantFixture{
				{name: "Classic", products: []productFixture{
					{name: "Jupiter Classic Seat Cover", price: 649, tags: []string{"seat", "cover"}},
				}},
			}},
		},
	},
	{
		brand: "Hero", typeTag: "bike",
		models: []modelFixture{
			{name: "Splendor", variants: []variantFixture{
				{name: "Plus", products: []productFixture{
					{name: "Splendor Plus Side Mirror Pair", price: 549, tags: []string{"mirror", "side"}},
					{name: "Splendor Plus Headlight Assembly", price: 1299, tags: []string{"headlight", "lamp", "light"}},
				}},
			}},
		},
	},
}

// seed writes the fixture tree through the repository and returns the
// number of records stored.
func seed(ctx context.Context, repo *catalogrepo.Repo) (int, error) {
	count := 0
	for _, f := range demo {
		brand, err := domcat.NewBrand(uuid.NewString(), f.brand, domcat.StatusActive, f.typeTag)
		if err != nil {
			return count, err
		}
		if err := repo.SaveBrand(ctx, brand); err != nil {
			return count, err
		}
		count++

		for _, mf := range f.models {
			model, err := domcat.NewModel(uuid.NewString(), mf.name, brand.ID())
			if err != nil {
				return count, err
			}
			if err := repo.SaveModel(ctx, model); err != nil {
				return count, err
			}
			count++

			for _, vf := range mf.variants {
				variant, err := domcat.NewVariant(uuid.NewString(), vf.name, model.ID())
				if err != nil {
					return count, err
				}
				if err := repo.SaveVariant(ctx, variant); err != nil {
					return count, err
				}
				count++

				for _, pf := range vf.products {
					product, err := domcat.NewProduct(
						uuid.NewString(), pf.name, brand.ID(), model.ID(),
						[]string{variant.ID()}, pf.price, pf.tags,
					)
					if err != nil {
						return count, err
					}
					if err := repo.SaveProduct(ctx, product); err != nil {
						return count, err
					}
					count++
				}
			}
		}
	}
	return count, nil
}
