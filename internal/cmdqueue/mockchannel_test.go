package cmdqueue_test

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/signal"
)

// MockChannel is a hand-authored mock of cmdqueue.Channel, in the
// shape mockgen would generate for it.
type MockChannel struct {
	ctrl     *gomock.Controller
	recorder *MockChannelMockRecorder
}

// MockChannelMockRecorder is the recorder for MockChannel's EXPECT() calls.
type MockChannelMockRecorder struct {
	mock *MockChannel
}

// NewMockChannel creates a new mock instance.
func NewMockChannel(ctrl *gomock.Controller) *MockChannel {
	mock := &MockChannel{ctrl: ctrl}
	mock.recorder = &MockChannelMockRecorder{mock}

	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockChannel) EXPECT() *MockChannelMockRecorder {
	return m.recorder
}

// GetReadyCommand mocks base method.
func (m *MockChannel) GetReadyCommand(cmd *signal.Command) *signal.Command {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "GetReadyCommand", cmd)
	ret0, _ := ret[0].(*signal.Command)

	return ret0
}

// GetReadyCommand indicates an expected call.
func (mr *MockChannelMockRecorder) GetReadyCommand(cmd interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetReadyCommand",
		reflect.TypeOf((*MockChannel)(nil).GetReadyCommand), cmd)
}

// OpenRow mocks base method.
func (m *MockChannel) OpenRow(loc addressmapping.Location) int {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "OpenRow", loc)
	ret0, _ := ret[0].(int)

	return ret0
}

// OpenRow indicates an expected call.
func (mr *MockChannelMockRecorder) OpenRow(loc interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OpenRow",
		reflect.TypeOf((*MockChannel)(nil).OpenRow), loc)
}

// RowHitCount mocks base method.
func (m *MockChannel) RowHitCount(loc addressmapping.Location) int {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "RowHitCount", loc)
	ret0, _ := ret[0].(int)

	return ret0
}

// RowHitCount indicates an expected call.
func (mr *MockChannelMockRecorder) RowHitCount(loc interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RowHitCount",
		reflect.TypeOf((*MockChannel)(nil).RowHitCount), loc)
}

// IsRefreshWaiting mocks base method.
func (m *MockChannel) IsRefreshWaiting() bool {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "IsRefreshWaiting")
	ret0, _ := ret[0].(bool)

	return ret0
}

// IsRefreshWaiting indicates an expected call.
func (mr *MockChannelMockRecorder) IsRefreshWaiting() *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsRefreshWaiting",
		reflect.TypeOf((*MockChannel)(nil).IsRefreshWaiting))
}

// PendingRefCommand mocks base method.
func (m *MockChannel) PendingRefCommand() *signal.Command {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "PendingRefCommand")
	ret0, _ := ret[0].(*signal.Command)

	return ret0
}

// PendingRefCommand indicates an expected call.
func (mr *MockChannelMockRecorder) PendingRefCommand() *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PendingRefCommand",
		reflect.TypeOf((*MockChannel)(nil).PendingRefCommand))
}
