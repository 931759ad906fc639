package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/finance"
	"github.com/synergytrade/backend/internal/domain/shared/valueobject"
	"github.com/synergytrade/backend/internal/domain/trade"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed loads the demo dataset when the store is empty: the motorcycle
// catalog, two historic sales orders, one open purchase order awaiting
// receipt and the opening journal entries. Running it against a non-empty
// store is a no-op.
func Seed(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	products := NewGormProductRepository(db)
	count, err := products.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: counting products: %w", err)
	}
	if count > 0 {
		logger.Debug("store already populated, skipping seed")
		return nil
	}

	catalogItems, err := seedProducts(ctx, products)
	if err != nil {
		return err
	}
	if err := seedSalesOrders(ctx, db, catalogItems); err != nil {
		return err
	}
	if err := seedPurchaseOrders(ctx, db, catalogItems); err != nil {
		return err
	}
	if err := seedJournals(ctx, db); err != nil {
		return err
	}

	logger.Info("demo data seeded", zap.Int("products", len(catalogItems)))
	return nil
}

type seedProduct struct {
	code     string
	name     string
	category string
	location string
	stock    int64
	minStock int64
	price    int64
	cost     int64
}

var demoProducts = []seedProduct{
	{"H-VAR-160", "Honda Vario 160 ABS", "Matic", "WH-A1", 5, 10, 29_500_000, 26_000_000},
	{"H-BEAT-DLX", "Honda Beat Deluxe", "Matic", "WH-A2", 45, 20, 18_900_000, 16_500_000},
	{"H-PCX-160", "Honda PCX 160 CBS", "Matic", "WH-B1", 2, 8, 32_600_000, 29_000_000},
	{"H-CRF-150", "Honda CRF 150L", "Sport", "WH-C1", 12, 5, 35_700_000, 31_000_000},
}

func seedProducts(ctx context.Context, repo catalog.ProductRepository) (map[string]*catalog.Product, error) {
	out := make(map[string]*catalog.Product, len(demoProducts))
	for _, sp := range demoProducts {
		p, err := catalog.NewProduct(sp.code, sp.name, sp.category, sp.location,
			valueobject.NewMoneyIDRFromInt(sp.price), valueobject.NewMoneyIDRFromInt(sp.cost))
		if err != nil {
			return nil, fmt.Errorf("seed: product %s: %w", sp.code, err)
		}
		if err := p.SetMinStock(sp.minStock); err != nil {
			return nil, fmt.Errorf("seed: product %s: %w", sp.code, err)
		}
		if err := p.SetStock(sp.stock); err != nil {
			return nil, fmt.Errorf("seed: product %s: %w", sp.code, err)
		}
		if err := repo.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("seed: saving product %s: %w", sp.code, err)
		}
		out[sp.code] = p
	}
	return out, nil
}

func seedSalesOrders(ctx context.Context, db *gorm.DB, products map[string]*catalog.Product) error {
	repo := NewGormSalesOrderRepository(db)

	beat := products["H-BEAT-DLX"]
	so1, err := trade.NewSalesOrder("SO-2023-001", "Budi Santoso", date(2023, 10, 1))
	if err != nil {
		return err
	}
	if _, err := so1.AddItem(beat.ID, beat.Name, 1, beat.GetPriceMoney()); err != nil {
		return err
	}
	if err := so1.Confirm(); err != nil {
		return err
	}
	if err := so1.MarkShipped(); err != nil {
		return err
	}
	so1.MarkPaid()
	if err := repo.Save(ctx, so1); err != nil {
		return fmt.Errorf("seed: saving %s: %w", so1.OrderNumber, err)
	}

	vario := products["H-VAR-160"]
	so2, err := trade.NewSalesOrder("SO-2023-002", "CV Maju Jaya", date(2023, 10, 2))
	if err != nil {
		return err
	}
	if _, err := so2.AddItem(vario.ID, vario.Name, 2, vario.GetPriceMoney()); err != nil {
		return err
	}
	if err := so2.Confirm(); err != nil {
		return err
	}
	so2.MarkPartiallyPaid()
	if err := repo.Save(ctx, so2); err != nil {
		return fmt.Errorf("seed: saving %s: %w", so2.OrderNumber, err)
	}
	return nil
}

func seedPurchaseOrders(ctx context.Context, db *gorm.DB, products map[string]*catalog.Product) error {
	repo := NewGormPurchaseOrderRepository(db)

	vario := products["H-VAR-160"]
	po, err := trade.NewPurchaseOrder("PO-2023-100", "PT Wahana Makmur Sejati (WMS)", "WMS-SO-998877", date(2023, 10, 25))
	if err != nil {
		return err
	}
	if _, err := po.AddItem(vario.ID, vario.Name, vario.Code, 10, vario.GetCostMoney()); err != nil {
		return err
	}
	if err := repo.Save(ctx, po); err != nil {
		return fmt.Errorf("seed: saving %s: %w", po.OrderNumber, err)
	}
	return nil
}

func seedJournals(ctx context.Context, db *gorm.DB) error {
	repo := NewGormJournalEntryRepository(db)

	je1, err := finance.NewJournalEntry("JE-001", "Sales Revenue SO-2023-001", "SO-2023-001",
		date(2023, 10, 1), []finance.LineInput{
			{AccountID: finance.AccountCashBank, Debit: idr(18_900_000)},
			{AccountID: finance.AccountSalesRevenue, Credit: idr(18_900_000)},
		})
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, je1); err != nil {
		return fmt.Errorf("seed: saving %s: %w", je1.EntryNumber, err)
	}

	je2, err := finance.NewJournalEntry("JE-002", "COGS Recognition SO-2023-001", "SO-2023-001",
		date(2023, 10, 1), []finance.LineInput{
			{AccountID: finance.AccountCostOfGoodsSold, Debit: idr(16_500_000)},
			{AccountID: finance.AccountInventoryAsset, Credit: idr(16_500_000)},
		})
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, je2); err != nil {
		return fmt.Errorf("seed: saving %s: %w", je2.EntryNumber, err)
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func idr(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}
