package posting

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/finance"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/trade"
)

// In-memory repositories backing the NoOpTransactionScope in service tests.

type memProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newMemProductRepo(products ...*catalog.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *memProductRepo) FindByCode(_ context.Context, code string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memProductRepo) FindAll(_ context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProductRepo) FindBelowMinStock(_ context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0)
	for _, p := range r.products {
		if p.Stock <= p.MinStock {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type memSalesOrderRepo struct {
	orders map[uuid.UUID]*trade.SalesOrder
	saved  int
}

func newMemSalesOrderRepo() *memSalesOrderRepo {
	return &memSalesOrderRepo{orders: make(map[uuid.UUID]*trade.SalesOrder)}
}

func (r *memSalesOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return o, nil
}

func (r *memSalesOrderRepo) FindAll(_ context.Context) ([]trade.SalesOrder, error) {
	out := make([]trade.SalesOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *memSalesOrderRepo) FindRecent(ctx context.Context, limit int) ([]trade.SalesOrder, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *memSalesOrderRepo) Save(_ context.Context, order *trade.SalesOrder) error {
	r.orders[order.ID] = order
	r.saved++
	return nil
}

func (r *memSalesOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

type memPurchaseOrderRepo struct {
	orders map[uuid.UUID]*trade.PurchaseOrder
}

func newMemPurchaseOrderRepo(orders ...*trade.PurchaseOrder) *memPurchaseOrderRepo {
	r := &memPurchaseOrderRepo{orders: make(map[uuid.UUID]*trade.PurchaseOrder)}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *memPurchaseOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return o, nil
}

func (r *memPurchaseOrderRepo) FindAll(_ context.Context) ([]trade.PurchaseOrder, error) {
	out := make([]trade.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *memPurchaseOrderRepo) FindByStatus(ctx context.Context, status trade.PurchaseOrderStatus) ([]trade.PurchaseOrder, error) {
	out := make([]trade.PurchaseOrder, 0)
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *memPurchaseOrderRepo) Save(_ context.Context, order *trade.PurchaseOrder) error {
	r.orders[order.ID] = order
	return nil
}

func (r *memPurchaseOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

type memReceivingReportRepo struct {
	reports map[uuid.UUID]*trade.ReceivingReport
}

func newMemReceivingReportRepo(reports ...*trade.ReceivingReport) *memReceivingReportRepo {
	r := &memReceivingReportRepo{reports: make(map[uuid.UUID]*trade.ReceivingReport)}
	for _, rr := range reports {
		r.reports[rr.ID] = rr
	}
	return r
}

func (r *memReceivingReportRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.ReceivingReport, error) {
	rr, ok := r.reports[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return rr, nil
}

func (r *memReceivingReportRepo) FindByPurchaseOrder(_ context.Context, purchaseOrderID uuid.UUID) ([]trade.ReceivingReport, error) {
	out := make([]trade.ReceivingReport, 0)
	for _, rr := range r.reports {
		if rr.PurchaseOrderID == purchaseOrderID {
			out = append(out, *rr)
		}
	}
	return out, nil
}

func (r *memReceivingReportRepo) Save(_ context.Context, report *trade.ReceivingReport) error {
	r.reports[report.ID] = report
	return nil
}

type memJournalRepo struct {
	entries []*finance.JournalEntry
}

func newMemJournalRepo() *memJournalRepo {
	return &memJournalRepo{}
}

func (r *memJournalRepo) FindByEntryNumber(_ context.Context, entryNumber string) (*finance.JournalEntry, error) {
	for _, e := range r.entries {
		if e.EntryNumber == entryNumber {
			return e, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memJournalRepo) FindByReference(_ context.Context, reference string) ([]finance.JournalEntry, error) {
	out := make([]finance.JournalEntry, 0)
	for _, e := range r.entries {
		if e.Reference == reference {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memJournalRepo) FindAll(_ context.Context) ([]finance.JournalEntry, error) {
	out := make([]finance.JournalEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
	}
	return out, nil
}

func (r *memJournalRepo) Save(_ context.Context, entry *finance.JournalEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memJournalRepo) SumDebitByAccount(_ context.Context, accountID string) (decimal.Decimal, error) {
	return r.sum(accountID, true), nil
}

func (r *memJournalRepo) SumCreditByAccount(_ context.Context, accountID string) (decimal.Decimal, error) {
	return r.sum(accountID, false), nil
}

func (r *memJournalRepo) sum(accountID string, debit bool) decimal.Decimal {
	total := decimal.Zero
	for _, e := range r.entries {
		for _, line := range e.Lines {
			if line.AccountID != accountID {
				continue
			}
			if debit {
				total = total.Add(line.Debit)
			} else {
				total = total.Add(line.Credit)
			}
		}
	}
	return total
}

func (r *memJournalRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.entries)), nil
}

// fakeAuditor returns a fixed verdict or error
type fakeAuditor struct {
	verdict *AuditVerdict
	err     error
	calls   int
}

func (a *fakeAuditor) AuditTransaction(_ context.Context, _ any) (*AuditVerdict, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return a.verdict, nil
}
