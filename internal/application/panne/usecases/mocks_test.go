package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gmao/internal/domain/equipment"
	evo "gmao/internal/domain/equipment/valueobjects"
	"gmao/internal/domain/panne"
	"gmao/internal/domain/user"
	uvo "gmao/internal/domain/user/valueobjects"
	"gmao/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockPanneRepository struct {
	mock.Mock
}

func (m *mockPanneRepository) Save(ctx context.Context, p *panne.Panne) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPanneRepository) Update(ctx context.Context, p *panne.Panne) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPanneRepository) GetByID(ctx context.Context, id uint) (*panne.Panne, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panne.Panne), args.Error(1)
}

func (m *mockPanneRepository) List(ctx context.Context, limit, offset int) ([]*panne.Panne, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*panne.Panne), args.Get(1).(int64), args.Error(2)
}

type mockEquipmentRepository struct {
	mock.Mock
}

func (m *mockEquipmentRepository) Save(ctx context.Context, e *equipment.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockEquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.Equipment), args.Error(1)
}

func (m *mockEquipmentRepository) GetBySerial(ctx context.Context, serial string) (*equipment.Equipment, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.Equipment), args.Error(1)
}

func (m *mockEquipmentRepository) List(ctx context.Context, limit, offset int) ([]*equipment.Equipment, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*equipment.Equipment), args.Get(1).(int64), args.Error(2)
}

func (m *mockEquipmentRepository) UpdateStatus(ctx context.Context, id uint, status evo.EquipmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*user.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepository) ListActiveByRole(ctx context.Context, role uvo.Role) ([]*user.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) PanneReported(ctx context.Context, panneID, equipmentID, actorID uint, technicianIDs []uint) error {
	args := m.Called(ctx, panneID, equipmentID, actorID, technicianIDs)
	return args.Error(0)
}

func (m *mockNotifier) PanneResolved(ctx context.Context, panneID, reporterID, actorID uint) error {
	args := m.Called(ctx, panneID, reporterID, actorID)
	return args.Error(0)
}
