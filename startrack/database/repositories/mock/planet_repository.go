package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/voidcrew/startrack/startrack/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockPlanetRepository is a mock of PlanetRepository interface.
type MockPlanetRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPlanetRepositoryMockRecorder
	isgomock struct{}
}

// MockPlanetRepositoryMockRecorder is the mock recorder for MockPlanetRepository.
type MockPlanetRepositoryMockRecorder struct {
	mock *MockPlanetRepository
}

// NewMockPlanetRepository creates a new mock instance.
func NewMockPlanetRepository(ctrl *gomock.Controller) *MockPlanetRepository {
	mock := &MockPlanetRepository{ctrl: ctrl}
	mock.recorder = &MockPlanetRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPlanetRepository) EXPECT() *MockPlanetRepositoryMockRecorder {
	return m.recorder
}

// GetAllLive mocks base method.
func (m *MockPlanetRepository) GetAllLive(ctx context.Context) ([]*models.Planet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllLive", ctx)
	ret0, _ := ret[0].([]*models.Planet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllLive indicates an expected call of GetAllLive.
func (mr *MockPlanetRepositoryMockRecorder) GetAllLive(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllLive", reflect.TypeOf((*MockPlanetRepository)(nil).GetAllLive), ctx)
}

// GetByAlliance mocks base method.
func (m *MockPlanetRepository) GetByAlliance(ctx context.Context, allianceID int64) ([]*models.Planet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByAlliance", ctx, allianceID)
	ret0, _ := ret[0].([]*models.Planet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByAlliance indicates an expected call of GetByAlliance.
func (mr *MockPlanetRepositoryMockRecorder) GetByAlliance(ctx, allianceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByAlliance", reflect.TypeOf((*MockPlanetRepository)(nil).GetByAlliance), ctx, allianceID)
}

// GetByPlayer mocks base method.
func (m *MockPlanetRepository) GetByPlayer(ctx context.Context, playerID int64) ([]*models.Planet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPlayer", ctx, playerID)
	ret0, _ := ret[0].([]*models.Planet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByPlayer indicates an expected call of GetByPlayer.
func (mr *MockPlanetRepositoryMockRecorder) GetByPlayer(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByPlayer", reflect.TypeOf((*MockPlanetRepository)(nil).GetByPlayer), ctx, playerID)
}

// GetNew mocks base method.
func (m *MockPlanetRepository) GetNew(ctx context.Context) ([]*models.NewPlanet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNew", ctx)
	ret0, _ := ret[0].([]*models.NewPlanet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNew indicates an expected call of GetNew.
func (mr *MockPlanetRepositoryMockRecorder) GetNew(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNew", reflect.TypeOf((*MockPlanetRepository)(nil).GetNew), ctx)
}

// GetSystem mocks base method.
func (m *MockPlanetRepository) GetSystem(ctx context.Context, galaxy, system int64) ([]*models.Planet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSystem", ctx, galaxy, system)
	ret0, _ := ret[0].([]*models.Planet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSystem indicates an expected call of GetSystem.
func (mr *MockPlanetRepositoryMockRecorder) GetSystem(ctx, galaxy, system any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSystem", reflect.TypeOf((*MockPlanetRepository)(nil).GetSystem), ctx, galaxy, system)
}

// GetSystemScans mocks base method.
func (m *MockPlanetRepository) GetSystemScans(ctx context.Context) ([]*models.SystemScan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSystemScans", ctx)
	ret0, _ := ret[0].([]*models.SystemScan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSystemScans indicates an expected call of GetSystemScans.
func (mr *MockPlanetRepositoryMockRecorder) GetSystemScans(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSystemScans", reflect.TypeOf((*MockPlanetRepository)(nil).GetSystemScans), ctx)
}

// LastScanAt mocks base method.
func (m *MockPlanetRepository) LastScanAt(ctx context.Context, galaxy, system int64) (*time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastScanAt", ctx, galaxy, system)
	ret0, _ := ret[0].(*time.Time)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LastScanAt indicates an expected call of LastScanAt.
func (mr *MockPlanetRepositoryMockRecorder) LastScanAt(ctx, galaxy, system any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastScanAt", reflect.TypeOf((*MockPlanetRepository)(nil).LastScanAt), ctx, galaxy, system)
}

// MarkAllSeen mocks base method.
func (m *MockPlanetRepository) MarkAllSeen(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkAllSeen", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MarkAllSeen indicates an expected call of MarkAllSeen.
func (mr *MockPlanetRepositoryMockRecorder) MarkAllSeen(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkAllSeen", reflect.TypeOf((*MockPlanetRepository)(nil).MarkAllSeen), ctx)
}

// MarkDeleted mocks base method.
func (m *MockPlanetRepository) MarkDeleted(ctx context.Context, galaxy, system, position int64, kind string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkDeleted", ctx, galaxy, system, position, kind)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkDeleted indicates an expected call of MarkDeleted.
func (mr *MockPlanetRepositoryMockRecorder) MarkDeleted(ctx, galaxy, system, position, kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkDeleted", reflect.TypeOf((*MockPlanetRepository)(nil).MarkDeleted), ctx, galaxy, system, position, kind)
}

// MarkSeen mocks base method.
func (m *MockPlanetRepository) MarkSeen(ctx context.Context, ids []int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkSeen", ctx, ids)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MarkSeen indicates an expected call of MarkSeen.
func (mr *MockPlanetRepositoryMockRecorder) MarkSeen(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkSeen", reflect.TypeOf((*MockPlanetRepository)(nil).MarkSeen), ctx, ids)
}

// UpdateBuildings mocks base method.
func (m *MockPlanetRepository) UpdateBuildings(ctx context.Context, galaxy, system, position int64, kind string, buildings models.LevelMap) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBuildings", ctx, galaxy, system, position, kind, buildings)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateBuildings indicates an expected call of UpdateBuildings.
func (mr *MockPlanetRepositoryMockRecorder) UpdateBuildings(ctx, galaxy, system, position, kind, buildings any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBuildings", reflect.TypeOf((*MockPlanetRepository)(nil).UpdateBuildings), ctx, galaxy, system, position, kind, buildings)
}

// UpdateDefense mocks base method.
func (m *MockPlanetRepository) UpdateDefense(ctx context.Context, galaxy, system, position int64, kind string, defense models.LevelMap) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDefense", ctx, galaxy, system, position, kind, defense)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateDefense indicates an expected call of UpdateDefense.
func (mr *MockPlanetRepositoryMockRecorder) UpdateDefense(ctx, galaxy, system, position, kind, defense any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDefense", reflect.TypeOf((*MockPlanetRepository)(nil).UpdateDefense), ctx, galaxy, system, position, kind, defense)
}

// UpdateFleet mocks base method.
func (m *MockPlanetRepository) UpdateFleet(ctx context.Context, galaxy, system, position int64, kind string, fleet models.LevelMap) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateFleet", ctx, galaxy, system, position, kind, fleet)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateFleet indicates an expected call of UpdateFleet.
func (mr *MockPlanetRepositoryMockRecorder) UpdateFleet(ctx, galaxy, system, position, kind, fleet any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateFleet", reflect.TypeOf((*MockPlanetRepository)(nil).UpdateFleet), ctx, galaxy, system, position, kind, fleet)
}

// UpdateResources mocks base method.
func (m *MockPlanetRepository) UpdateResources(ctx context.Context, galaxy, system, position int64, kind string, resources models.LevelMap) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateResources", ctx, galaxy, system, position, kind, resources)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateResources indicates an expected call of UpdateResources.
func (mr *MockPlanetRepositoryMockRecorder) UpdateResources(ctx, galaxy, system, position, kind, resources any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateResources", reflect.TypeOf((*MockPlanetRepository)(nil).UpdateResources), ctx, galaxy, system, position, kind, resources)
}

// UpsertEmpire mocks base method.
func (m *MockPlanetRepository) UpsertEmpire(ctx context.Context, planet *models.Planet) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertEmpire", ctx, planet)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertEmpire indicates an expected call of UpsertEmpire.
func (mr *MockPlanetRepositoryMockRecorder) UpsertEmpire(ctx, planet any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertEmpire", reflect.TypeOf((*MockPlanetRepository)(nil).UpsertEmpire), ctx, planet)
}

// UpsertScan mocks base method.
func (m *MockPlanetRepository) UpsertScan(ctx context.Context, planet *models.Planet) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertScan", ctx, planet)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertScan indicates an expected call of UpsertScan.
func (mr *MockPlanetRepositoryMockRecorder) UpsertScan(ctx, planet any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertScan", reflect.TypeOf((*MockPlanetRepository)(nil).UpsertScan), ctx, planet)
}
