package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/voidcrew/startrack/startrack/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockAllianceRepository is a mock of AllianceRepository interface.
type MockAllianceRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAllianceRepositoryMockRecorder
	isgomock struct{}
}

// MockAllianceRepositoryMockRecorder is the mock recorder for MockAllianceRepository.
type MockAllianceRepositoryMockRecorder struct {
	mock *MockAllianceRepository
}

// NewMockAllianceRepository creates a new mock instance.
func NewMockAllianceRepository(ctrl *gomock.Controller) *MockAllianceRepository {
	mock := &MockAllianceRepository{ctrl: ctrl}
	mock.recorder = &MockAllianceRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAllianceRepository) EXPECT() *MockAllianceRepositoryMockRecorder {
	return m.recorder
}

// EnsureExists mocks base method.
func (m *MockAllianceRepository) EnsureExists(ctx context.Context, id int64, tag string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnsureExists", ctx, id, tag)
	ret0, _ := ret[0].(error)
	return ret0
}

// EnsureExists indicates an expected call of EnsureExists.
func (mr *MockAllianceRepositoryMockRecorder) EnsureExists(ctx, id, tag any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnsureExists", reflect.TypeOf((*MockAllianceRepository)(nil).EnsureExists), ctx, id, tag)
}

// GetAll mocks base method.
func (m *MockAllianceRepository) GetAll(ctx context.Context) ([]*models.Alliance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx)
	ret0, _ := ret[0].([]*models.Alliance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockAllianceRepositoryMockRecorder) GetAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockAllianceRepository)(nil).GetAll), ctx)
}

// GetByID mocks base method.
func (m *MockAllianceRepository) GetByID(ctx context.Context, id int64) (*models.Alliance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Alliance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockAllianceRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockAllianceRepository)(nil).GetByID), ctx, id)
}

// GetByNameOrTag mocks base method.
func (m *MockAllianceRepository) GetByNameOrTag(ctx context.Context, nameOrTag string) (*models.Alliance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByNameOrTag", ctx, nameOrTag)
	ret0, _ := ret[0].(*models.Alliance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByNameOrTag indicates an expected call of GetByNameOrTag.
func (mr *MockAllianceRepositoryMockRecorder) GetByNameOrTag(ctx, nameOrTag any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByNameOrTag", reflect.TypeOf((*MockAllianceRepository)(nil).GetByNameOrTag), ctx, nameOrTag)
}

// UpdateName mocks base method.
func (m *MockAllianceRepository) UpdateName(ctx context.Context, id int64, name string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateName", ctx, id, name)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateName indicates an expected call of UpdateName.
func (mr *MockAllianceRepositoryMockRecorder) UpdateName(ctx, id, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateName", reflect.TypeOf((*MockAllianceRepository)(nil).UpdateName), ctx, id, name)
}
