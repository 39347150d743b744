package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"customer-matrix/internal/model"
	pkgerrors "customer-matrix/pkg/errors"
)

// 测试用时钟，保证 createdAt 单调递增
var mockClock = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func stamp(r *model.Record, prefix string, seq *int) {
	*seq++
	if r.ID == "" {
		r.ID = fmt.Sprintf("%s-%03d", prefix, *seq)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = mockClock.Add(time.Duration(*seq) * time.Second)
	}
	r.UpdatedAt = r.CreatedAt
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[string]*model.Location
	seq       int

	// 注入错误
	createErr error
	listErr   error
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[string]*model.Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, l := range m.locations {
		if l.Name == loc.Name {
			return fmt.Errorf("%w: E11000 duplicate key error index: uniq_name", pkgerrors.ErrDuplicate)
		}
	}
	stamp(&loc.Record, "loc", &m.seq)
	m.locations[loc.ID] = loc
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id string) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockLocationRepo) GetByName(_ context.Context, name string) (*model.Location, error) {
	for _, l := range m.locations {
		if l.Name == name {
			cp := *l
			return &cp, nil
		}
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockLocationRepo) List(_ context.Context) ([]model.Location, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.Location, 0, len(m.locations))
	for _, l := range m.locations {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockLocationRepo) Update(_ context.Context, loc *model.Location) error {
	if _, ok := m.locations[loc.ID]; !ok {
		return pkgerrors.ErrNotFound
	}
	cp := *loc
	m.locations[loc.ID] = &cp
	return nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.locations[id]; !ok {
		return pkgerrors.ErrNotFound
	}
	delete(m.locations, id)
	return nil
}

// ── Mock BaseRepository ──

type mockBaseRepo struct {
	bases map[string]*model.Base
	seq   int

	createErr error
}

func newMockBaseRepo() *mockBaseRepo {
	return &mockBaseRepo{bases: make(map[string]*model.Base)}
}

func (m *mockBaseRepo) Create(_ context.Context, base *model.Base) error {
	if m.createErr != nil {
		return m.createErr
	}
	stamp(&base.Record, "base", &m.seq)
	m.bases[base.ID] = base
	return nil
}

func (m *mockBaseRepo) GetByID(_ context.Context, id string) (*model.Base, error) {
	if b, ok := m.bases[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockBaseRepo) GetByName(_ context.Context, name string) (*model.Base, error) {
	var found *model.Base
	for _, b := range m.bases {
		if b.Name == name && (found == nil || b.CreatedAt.Before(found.CreatedAt)) {
			found = b
		}
	}
	if found == nil {
		return nil, pkgerrors.ErrNotFound
	}
	cp := *found
	return &cp, nil
}

func (m *mockBaseRepo) List(_ context.Context) ([]model.Base, error) {
	result := make([]model.Base, 0, len(m.bases))
	for _, b := range m.bases {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (m *mockBaseRepo) Update(_ context.Context, base *model.Base) error {
	if _, ok := m.bases[base.ID]; !ok {
		return pkgerrors.ErrNotFound
	}
	cp := *base
	m.bases[base.ID] = &cp
	return nil
}

func (m *mockBaseRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.bases[id]; !ok {
		return pkgerrors.ErrNotFound
	}
	delete(m.bases, id)
	return nil
}

// ── Mock UnitRepository ──

type mockUnitRepo struct {
	units map[string]*model.Unit
	seq   int

	createErr error
	updateErr error
}

func newMockUnitRepo() *mockUnitRepo {
	return &mockUnitRepo{units: make(map[string]*model.Unit)}
}

func (m *mockUnitRepo) Create(_ context.Context, unit *model.Unit) error {
	if m.createErr != nil {
		return m.createErr
	}
	stamp(&unit.Record, "unit", &m.seq)
	m.units[unit.ID] = unit
	return nil
}

func (m *mockUnitRepo) GetByID(_ context.Context, id string) (*model.Unit, error) {
	if u, ok := m.units[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockUnitRepo) List(_ context.Context) ([]model.Unit, error) {
	result := make([]model.Unit, 0, len(m.units))
	for _, u := range m.units {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (m *mockUnitRepo) Update(_ context.Context, unit *model.Unit) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.units[unit.ID]; !ok {
		return pkgerrors.ErrNotFound
	}
	cp := *unit
	m.units[unit.ID] = &cp
	return nil
}

func (m *mockUnitRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.units[id]; !ok {
		return pkgerrors.ErrNotFound
	}
	delete(m.units, id)
	return nil
}
