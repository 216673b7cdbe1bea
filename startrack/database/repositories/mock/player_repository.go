package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/voidcrew/startrack/startrack/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockPlayerRepository is a mock of PlayerRepository interface.
type MockPlayerRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPlayerRepositoryMockRecorder
	isgomock struct{}
}

// MockPlayerRepositoryMockRecorder is the mock recorder for MockPlayerRepository.
type MockPlayerRepositoryMockRecorder struct {
	mock *MockPlayerRepository
}

// NewMockPlayerRepository creates a new mock instance.
func NewMockPlayerRepository(ctrl *gomock.Controller) *MockPlayerRepository {
	mock := &MockPlayerRepository{ctrl: ctrl}
	mock.recorder = &MockPlayerRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPlayerRepository) EXPECT() *MockPlayerRepositoryMockRecorder {
	return m.recorder
}

// ClearInactive mocks base method.
func (m *MockPlayerRepository) ClearInactive(ctx context.Context, playerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearInactive", ctx, playerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearInactive indicates an expected call of ClearInactive.
func (mr *MockPlayerRepositoryMockRecorder) ClearInactive(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearInactive", reflect.TypeOf((*MockPlayerRepository)(nil).ClearInactive), ctx, playerID)
}

// ClearVacation mocks base method.
func (m *MockPlayerRepository) ClearVacation(ctx context.Context, playerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearVacation", ctx, playerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearVacation indicates an expected call of ClearVacation.
func (mr *MockPlayerRepositoryMockRecorder) ClearVacation(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearVacation", reflect.TypeOf((*MockPlayerRepository)(nil).ClearVacation), ctx, playerID)
}

// EnsureExists mocks base method.
func (m *MockPlayerRepository) EnsureExists(ctx context.Context, id int64, name string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnsureExists", ctx, id, name)
	ret0, _ := ret[0].(error)
	return ret0
}

// EnsureExists indicates an expected call of EnsureExists.
func (mr *MockPlayerRepositoryMockRecorder) EnsureExists(ctx, id, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnsureExists", reflect.TypeOf((*MockPlayerRepository)(nil).EnsureExists), ctx, id, name)
}

// GetAll mocks base method.
func (m *MockPlayerRepository) GetAll(ctx context.Context) ([]*models.Player, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx)
	ret0, _ := ret[0].([]*models.Player)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockPlayerRepositoryMockRecorder) GetAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockPlayerRepository)(nil).GetAll), ctx)
}

// GetByAlliance mocks base method.
func (m *MockPlayerRepository) GetByAlliance(ctx context.Context, allianceID int64) ([]*models.Player, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByAlliance", ctx, allianceID)
	ret0, _ := ret[0].([]*models.Player)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByAlliance indicates an expected call of GetByAlliance.
func (mr *MockPlayerRepositoryMockRecorder) GetByAlliance(ctx, allianceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByAlliance", reflect.TypeOf((*MockPlayerRepository)(nil).GetByAlliance), ctx, allianceID)
}

// GetByID mocks base method.
func (m *MockPlayerRepository) GetByID(ctx context.Context, id int64) (*models.PlayerWithAlliance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.PlayerWithAlliance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockPlayerRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPlayerRepository)(nil).GetByID), ctx, id)
}

// GetByName mocks base method.
func (m *MockPlayerRepository) GetByName(ctx context.Context, name string) (*models.PlayerWithAlliance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByName", ctx, name)
	ret0, _ := ret[0].(*models.PlayerWithAlliance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByName indicates an expected call of GetByName.
func (mr *MockPlayerRepositoryMockRecorder) GetByName(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByName", reflect.TypeOf((*MockPlayerRepository)(nil).GetByName), ctx, name)
}

// GetNames mocks base method.
func (m *MockPlayerRepository) GetNames(ctx context.Context) (map[int64]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNames", ctx)
	ret0, _ := ret[0].(map[int64]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNames indicates an expected call of GetNames.
func (mr *MockPlayerRepositoryMockRecorder) GetNames(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNames", reflect.TypeOf((*MockPlayerRepository)(nil).GetNames), ctx)
}

// GetTopInactive mocks base method.
func (m *MockPlayerRepository) GetTopInactive(ctx context.Context, limit int) ([]*models.InactivePlayer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTopInactive", ctx, limit)
	ret0, _ := ret[0].([]*models.InactivePlayer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTopInactive indicates an expected call of GetTopInactive.
func (mr *MockPlayerRepositoryMockRecorder) GetTopInactive(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTopInactive", reflect.TypeOf((*MockPlayerRepository)(nil).GetTopInactive), ctx, limit)
}

// MarkDeleted mocks base method.
func (m *MockPlayerRepository) MarkDeleted(ctx context.Context, playerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkDeleted", ctx, playerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkDeleted indicates an expected call of MarkDeleted.
func (mr *MockPlayerRepositoryMockRecorder) MarkDeleted(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkDeleted", reflect.TypeOf((*MockPlayerRepository)(nil).MarkDeleted), ctx, playerID)
}

// SetInactiveSince mocks base method.
func (m *MockPlayerRepository) SetInactiveSince(ctx context.Context, playerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetInactiveSince", ctx, playerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetInactiveSince indicates an expected call of SetInactiveSince.
func (mr *MockPlayerRepositoryMockRecorder) SetInactiveSince(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetInactiveSince", reflect.TypeOf((*MockPlayerRepository)(nil).SetInactiveSince), ctx, playerID)
}

// SetVacationSince mocks base method.
func (m *MockPlayerRepository) SetVacationSince(ctx context.Context, playerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetVacationSince", ctx, playerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetVacationSince indicates an expected call of SetVacationSince.
func (mr *MockPlayerRepositoryMockRecorder) SetVacationSince(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetVacationSince", reflect.TypeOf((*MockPlayerRepository)(nil).SetVacationSince), ctx, playerID)
}

// UpdateAlliance mocks base method.
func (m *MockPlayerRepository) UpdateAlliance(ctx context.Context, playerID, allianceID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateAlliance", ctx, playerID, allianceID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateAlliance indicates an expected call of UpdateAlliance.
func (mr *MockPlayerRepositoryMockRecorder) UpdateAlliance(ctx, playerID, allianceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateAlliance", reflect.TypeOf((*MockPlayerRepository)(nil).UpdateAlliance), ctx, playerID, allianceID)
}

// UpdateName mocks base method.
func (m *MockPlayerRepository) UpdateName(ctx context.Context, id int64, name string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateName", ctx, id, name)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateName indicates an expected call of UpdateName.
func (mr *MockPlayerRepositoryMockRecorder) UpdateName(ctx, id, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateName", reflect.TypeOf((*MockPlayerRepository)(nil).UpdateName), ctx, id, name)
}

// UpdateNotice mocks base method.
func (m *MockPlayerRepository) UpdateNotice(ctx context.Context, playerID int64, notice string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateNotice", ctx, playerID, notice)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateNotice indicates an expected call of UpdateNotice.
func (mr *MockPlayerRepositoryMockRecorder) UpdateNotice(ctx, playerID, notice any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateNotice", reflect.TypeOf((*MockPlayerRepository)(nil).UpdateNotice), ctx, playerID, notice)
}

// UpdateResearch mocks base method.
func (m *MockPlayerRepository) UpdateResearch(ctx context.Context, playerID int64, research models.ResearchMap) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateResearch", ctx, playerID, research)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateResearch indicates an expected call of UpdateResearch.
func (mr *MockPlayerRepositoryMockRecorder) UpdateResearch(ctx, playerID, research any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateResearch", reflect.TypeOf((*MockPlayerRepository)(nil).UpdateResearch), ctx, playerID, research)
}

// UpdateScore mocks base method.
func (m *MockPlayerRepository) UpdateScore(ctx context.Context, playerID int64, statType string, score, rank int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateScore", ctx, playerID, statType, score, rank)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateScore indicates an expected call of UpdateScore.
func (mr *MockPlayerRepositoryMockRecorder) UpdateScore(ctx, playerID, statType, score, rank any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateScore", reflect.TypeOf((*MockPlayerRepository)(nil).UpdateScore), ctx, playerID, statType, score, rank)
}
