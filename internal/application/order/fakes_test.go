package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clohit/storefront-api/internal/application/inventory"
	"github.com/clohit/storefront-api/internal/domain/entity"
	"github.com/clohit/storefront-api/internal/domain/repository"
)

// newInventoryService usa el caso de uso real de inventario: los métodos InTx
// operan sobre el repositorio del caller, no necesitan pool ni txRunner.
func newInventoryService() InventoryService {
	return inventory.NewUseCase(nil, nil)
}

// Fakes en memoria para los casos de uso de órdenes. El fakeTxRunner toma un
// snapshot de los stores antes de cada callback y lo restaura si el callback
// falla, igual que el rollback de la transacción real.

var fixedNow = time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

type invKey struct{ productID, category string }

type fakeInvRepo struct {
	records map[invKey]*entity.InventoryRecord
}

func newFakeInvRepo() *fakeInvRepo {
	return &fakeInvRepo{records: make(map[invKey]*entity.InventoryRecord)}
}

func (f *fakeInvRepo) Get(_ context.Context, productID, category string) (*entity.InventoryRecord, error) {
	rec, ok := f.records[invKey{productID, category}]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeInvRepo) GetForUpdate(ctx context.Context, productID, category string) (*entity.InventoryRecord, error) {
	return f.Get(ctx, productID, category)
}

func (f *fakeInvRepo) Upsert(_ context.Context, record *entity.InventoryRecord) error {
	cp := *record
	f.records[invKey{record.ProductID, record.Category}] = &cp
	return nil
}

func (f *fakeInvRepo) Delete(_ context.Context, productID, category string) error {
	delete(f.records, invKey{productID, category})
	return nil
}

func (f *fakeInvRepo) List(_ context.Context, limit, offset int) ([]*entity.InventoryRecord, error) {
	return nil, nil
}

func (f *fakeInvRepo) ListLowStock(_ context.Context) ([]*entity.InventoryRecord, error) {
	return nil, nil
}

func (f *fakeInvRepo) snapshot() map[invKey]*entity.InventoryRecord {
	cp := make(map[invKey]*entity.InventoryRecord, len(f.records))
	for k, v := range f.records {
		rec := *v
		cp[k] = &rec
	}
	return cp
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	cp := *order
	cp.Items = nil
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) CreateItem(_ context.Context, item *entity.OrderItem) error {
	o, ok := f.orders[item.OrderID]
	if ok {
		o.Items = append(o.Items, *item)
	}
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (f *fakeOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	o, ok := f.orders[order.ID]
	if !ok {
		return nil
	}
	o.Status = order.Status
	o.PaymentStatus = order.PaymentStatus
	o.Notes = order.Notes
	o.EstimatedDelivery = order.EstimatedDelivery
	o.UpdatedAt = order.UpdatedAt
	return nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID, status string, limit, offset int) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID && (status == "" || o.Status == status) {
			cp := *o
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeOrderRepo) CountByUser(ctx context.Context, userID, status string) (int, error) {
	list, _ := f.ListByUser(ctx, userID, status, 0, 0)
	return len(list), nil
}

func (f *fakeOrderRepo) List(_ context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			cp := *o
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeOrderRepo) Count(ctx context.Context, status string) (int, error) {
	list, _ := f.List(ctx, status, 0, 0)
	return len(list), nil
}

func (f *fakeOrderRepo) snapshot() map[string]*entity.Order {
	cp := make(map[string]*entity.Order, len(f.orders))
	for k, v := range f.orders {
		o := *v
		o.Items = append([]entity.OrderItem(nil), v.Items...)
		cp[k] = &o
	}
	return cp
}

type fakeSeqRepo struct {
	counters map[string]int
}

func newFakeSeqRepo() *fakeSeqRepo {
	return &fakeSeqRepo{counters: make(map[string]int)}
}

func (f *fakeSeqRepo) Next(_ context.Context, day time.Time) (int, error) {
	key := day.Format("2006-01-02")
	f.counters[key]++
	return f.counters[key], nil
}

func (f *fakeSeqRepo) snapshot() map[string]int {
	cp := make(map[string]int, len(f.counters))
	for k, v := range f.counters {
		cp[k] = v
	}
	return cp
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error { return nil }

func (f *fakeProductRepo) Delete(_ context.Context, id string) error { return nil }

func (f *fakeProductRepo) ListByCategory(_ context.Context, category string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) CountByCategory(_ context.Context, category string) (int, error) {
	return 0, nil
}

func (f *fakeProductRepo) Search(_ context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) CountSearch(_ context.Context, filter repository.ProductFilter) (int, error) {
	return 0, nil
}

// fakeTxRunner implementa TxRunner con rollback por snapshot.
type fakeTxRunner struct {
	invRepo   *fakeInvRepo
	orderRepo *fakeOrderRepo
	seqRepo   *fakeSeqRepo
}

func (f *fakeTxRunner) RunCheckout(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	orderRepo repository.OrderRepository,
	seqRepo repository.OrderSequenceRepository,
) error) error {
	inv, ord, seq := f.invRepo.snapshot(), f.orderRepo.snapshot(), f.seqRepo.snapshot()
	if err := fn(f.invRepo, f.orderRepo, f.seqRepo); err != nil {
		f.invRepo.records, f.orderRepo.orders, f.seqRepo.counters = inv, ord, seq
		return err
	}
	return nil
}

func (f *fakeTxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	invRepo repository.InventoryRepository,
) error) error {
	inv, ord := f.invRepo.snapshot(), f.orderRepo.snapshot()
	if err := fn(f.orderRepo, f.invRepo); err != nil {
		f.invRepo.records, f.orderRepo.orders = inv, ord
		return err
	}
	return nil
}

// testWorld agrupa los fakes y casos de uso ya cableados.
type testWorld struct {
	invRepo     *fakeInvRepo
	orderRepo   *fakeOrderRepo
	seqRepo     *fakeSeqRepo
	productRepo *fakeProductRepo
	checkout    *CheckoutUseCase
	lifecycle   *LifecycleUseCase
	queries     *QueryUseCase
}

func newTestWorld() *testWorld {
	w := &testWorld{
		invRepo:     newFakeInvRepo(),
		orderRepo:   newFakeOrderRepo(),
		seqRepo:     newFakeSeqRepo(),
		productRepo: newFakeProductRepo(),
	}
	txRunner := &fakeTxRunner{invRepo: w.invRepo, orderRepo: w.orderRepo, seqRepo: w.seqRepo}
	invUC := newInventoryService()
	w.checkout = NewCheckoutUseCase(txRunner, invUC, w.productRepo)
	w.checkout.now = func() time.Time { return fixedNow }
	w.lifecycle = NewLifecycleUseCase(txRunner, invUC)
	w.lifecycle.now = func() time.Time { return fixedNow }
	w.queries = NewQueryUseCase(w.orderRepo)
	return w
}

// seedProduct crea el producto y su registro de inventario con stock dado.
func (w *testWorld) seedProduct(id, category, brand, name string, price int64, stock int64) {
	w.productRepo.products[id] = &entity.Product{
		ID:       id,
		Category: category,
		Brand:    brand,
		Name:     name,
		Image:    "https://img.example/" + id + ".jpg",
		MRP:      decimal.NewFromInt(price),
		Price:    decimal.NewFromInt(price),
	}
	rec := &entity.InventoryRecord{
		ProductID:         id,
		Category:          category,
		StockQuantity:     stock,
		LowStockThreshold: entity.DefaultLowStockThreshold,
	}
	rec.Recalculate()
	w.invRepo.records[invKey{id, category}] = rec
}

func (w *testWorld) inventoryOf(productID, category string) *entity.InventoryRecord {
	return w.invRepo.records[invKey{productID, category}]
}
