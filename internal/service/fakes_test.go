package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/landlordly/internal/domain"
)

type fakePropertyRepo struct {
	items  map[string]*domain.Property
	nextID int
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{items: make(map[string]*domain.Property)}
}

func (r *fakePropertyRepo) Create(_ context.Context, property *domain.Property) error {
	r.nextID++
	property.ID = fmt.Sprintf("prop-%d", r.nextID)
	property.CreatedAt = time.Now()
	property.UpdatedAt = property.CreatedAt
	clone := *property
	r.items[property.ID] = &clone
	return nil
}

func (r *fakePropertyRepo) Update(_ context.Context, property *domain.Property) error {
	if _, ok := r.items[property.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *property
	r.items[property.ID] = &clone
	return nil
}

func (r *fakePropertyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id string) (*domain.Property, error) {
	property, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *property
	return &clone, nil
}

func (r *fakePropertyRepo) ListByLandlord(_ context.Context, landlordID string) ([]domain.Property, error) {
	out := make([]domain.Property, 0)
	for _, property := range r.items {
		if property.LandlordID == landlordID {
			out = append(out, *property)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeUnitRepo struct {
	items  map[string]*domain.Unit
	nextID int
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{items: make(map[string]*domain.Unit)}
}

func (r *fakeUnitRepo) Create(_ context.Context, unit *domain.Unit) error {
	r.nextID++
	unit.ID = fmt.Sprintf("unit-%d", r.nextID)
	unit.CreatedAt = time.Now()
	unit.UpdatedAt = unit.CreatedAt
	clone := *unit
	r.items[unit.ID] = &clone
	return nil
}

func (r *fakeUnitRepo) Update(_ context.Context, unit *domain.Unit) error {
	if _, ok := r.items[unit.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *unit
	r.items[unit.ID] = &clone
	return nil
}

func (r *fakeUnitRepo) GetByID(_ context.Context, id string) (*domain.Unit, error) {
	unit, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *unit
	return &clone, nil
}

func (r *fakeUnitRepo) GetByTenant(_ context.Context, tenantID string) (*domain.Unit, error) {
	for _, unit := range r.items {
		if unit.TenantID != nil && *unit.TenantID == tenantID {
			clone := *unit
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUnitRepo) ListByProperty(_ context.Context, propertyID string) ([]domain.Unit, error) {
	out := make([]domain.Unit, 0)
	for _, unit := range r.items {
		if unit.PropertyID == propertyID {
			out = append(out, *unit)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnitNumber < out[j].UnitNumber })
	return out, nil
}

func (r *fakeUnitRepo) DeleteByProperty(_ context.Context, propertyID string) error {
	for id, unit := range r.items {
		if unit.PropertyID == propertyID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakePaymentRepo struct {
	items  map[string]*domain.Payment
	nextID int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{items: make(map[string]*domain.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	r.nextID++
	payment.ID = fmt.Sprintf("pay-%d", r.nextID)
	payment.CreatedAt = time.Now()
	clone := *payment
	r.items[payment.ID] = &clone
	return nil
}

func (r *fakePaymentRepo) Update(_ context.Context, payment *domain.Payment) error {
	if _, ok := r.items[payment.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *payment
	r.items[payment.ID] = &clone
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id string) (*domain.Payment, error) {
	payment, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *payment
	return &clone, nil
}

func (r *fakePaymentRepo) ListByTenantAndStatus(_ context.Context, tenantID string, status domain.PaymentStatus) ([]domain.Payment, error) {
	out := make([]domain.Payment, 0)
	for _, payment := range r.items {
		if payment.TenantID == tenantID && payment.Status == status {
			out = append(out, *payment)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePaymentRepo) ListByUnit(_ context.Context, unitID string) ([]domain.Payment, error) {
	out := make([]domain.Payment, 0)
	for _, payment := range r.items {
		if payment.UnitID == unitID {
			out = append(out, *payment)
		}
	}
	return out, nil
}

type fakeMaintenanceRepo struct {
	items  map[string]*domain.MaintenanceRequest
	units  *fakeUnitRepo
	props  *fakePropertyRepo
	nextID int
}

func newFakeMaintenanceRepo(units *fakeUnitRepo, props *fakePropertyRepo) *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{
		items: make(map[string]*domain.MaintenanceRequest),
		units: units,
		props: props,
	}
}

func (r *fakeMaintenanceRepo) Create(_ context.Context, request *domain.MaintenanceRequest) error {
	r.nextID++
	request.ID = fmt.Sprintf("maint-%d", r.nextID)
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	clone := *request
	r.items[request.ID] = &clone
	return nil
}

func (r *fakeMaintenanceRepo) Update(_ context.Context, request *domain.MaintenanceRequest) error {
	if _, ok := r.items[request.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *request
	r.items[request.ID] = &clone
	return nil
}

func (r *fakeMaintenanceRepo) GetByID(_ context.Context, id string) (*domain.MaintenanceRequest, error) {
	request, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *request
	return &clone, nil
}

func (r *fakeMaintenanceRepo) ListByTenant(_ context.Context, tenantID string) ([]domain.MaintenanceRequest, error) {
	out := make([]domain.MaintenanceRequest, 0)
	for _, request := range r.items {
		if request.TenantID == tenantID {
			out = append(out, *request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMaintenanceRepo) ListByLandlord(ctx context.Context, landlordID string) ([]domain.MaintenanceRequest, error) {
	out := make([]domain.MaintenanceRequest, 0)
	for _, request := range r.items {
		unit, err := r.units.GetByID(ctx, request.UnitID)
		if err != nil {
			continue
		}
		property, err := r.props.GetByID(ctx, unit.PropertyID)
		if err != nil {
			continue
		}
		if property.LandlordID == landlordID {
			out = append(out, *request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeMessageRepo struct {
	items  []*domain.ChatMessage
	nextID int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(_ context.Context, msg *domain.ChatMessage) error {
	r.nextID++
	msg.ID = fmt.Sprintf("msg-%d", r.nextID)
	msg.CreatedAt = time.Now()
	clone := *msg
	r.items = append(r.items, &clone)
	return nil
}

func (r *fakeMessageRepo) ListThread(_ context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	out := make([]domain.ChatMessage, 0)
	for _, msg := range r.items {
		if msg.SenderID == userID || msg.ReceiverID == userID {
			out = append(out, *msg)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(_ context.Context, receiverID string) error {
	for _, msg := range r.items {
		if msg.ReceiverID == receiverID {
			msg.Read = true
		}
	}
	return nil
}
