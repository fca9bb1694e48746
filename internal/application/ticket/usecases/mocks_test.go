package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gmao/internal/domain/category"
	"gmao/internal/domain/equipment"
	evo "gmao/internal/domain/equipment/valueobjects"
	"gmao/internal/domain/ticket"
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

// passthroughTxManager runs fn inline and counts invocations, so tests can
// assert that a write went through the transaction boundary.
type passthroughTxManager struct {
	calls int
}

func newPassthroughTxManager() *passthroughTxManager { return &passthroughTxManager{} }

func (m *passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockTicketRepository struct {
	mock.Mock
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*ticket.Ticket), args.Get(1).(int64), args.Error(2)
}

func (m *mockTicketRepository) HasOpenTicketForEquipment(ctx context.Context, equipmentID uint) (bool, error) {
	args := m.Called(ctx, equipmentID)
	return args.Bool(0), args.Error(1)
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

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *category.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
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

func (m *mockNotifier) TicketAssigned(ctx context.Context, e ticket.AssignedEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockNotifier) TicketStatusChanged(ctx context.Context, e ticket.StatusChangedEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockNotifier) TicketCommented(ctx context.Context, e ticket.CommentedEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
