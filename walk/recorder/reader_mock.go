// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package recorder is a generated GoMock package.
package recorder

import (
	reflect "reflect"

	walk "github.com/0xsoniclabs/aida-randwalk/walk"
	gomock "go.uber.org/mock/gomock"
)

// MockRowReader is a mock of RowReader interface.
type MockRowReader struct {
	ctrl     *gomock.Controller
	recorder *MockRowReaderMockRecorder
	isgomock struct{}
}

// MockRowReaderMockRecorder is the mock recorder for MockRowReader.
type MockRowReaderMockRecorder struct {
	mock *MockRowReader
}

// NewMockRowReader creates a new mock instance.
func NewMockRowReader(ctrl *gomock.Controller) *MockRowReader {
	mock := &MockRowReader{ctrl: ctrl}
	mock.recorder = &MockRowReaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRowReader) EXPECT() *MockRowReaderMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockRowReader) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockRowReaderMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockRowReader)(nil).Close))
}

// Probability mocks base method.
func (m *MockRowReader) Probability() float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Probability")
	ret0, _ := ret[0].(float64)
	return ret0
}

// Probability indicates an expected call of Probability.
func (mr *MockRowReaderMockRecorder) Probability() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Probability", reflect.TypeOf((*MockRowReader)(nil).Probability))
}

// ReadRow mocks base method.
func (m *MockRowReader) ReadRow() (walk.Row, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadRow")
	ret0, _ := ret[0].(walk.Row)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReadRow indicates an expected call of ReadRow.
func (mr *MockRowReaderMockRecorder) ReadRow() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadRow", reflect.TypeOf((*MockRowReader)(nil).ReadRow))
}

// Start mocks base method.
func (m *MockRowReader) Start() int64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Start")
	ret0, _ := ret[0].(int64)
	return ret0
}

// Start indicates an expected call of Start.
func (mr *MockRowReaderMockRecorder) Start() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockRowReader)(nil).Start))
}

// Steps mocks base method.
func (m *MockRowReader) Steps() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Steps")
	ret0, _ := ret[0].(int)
	return ret0
}

// Steps indicates an expected call of Steps.
func (mr *MockRowReaderMockRecorder) Steps() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Steps", reflect.TypeOf((*MockRowReader)(nil).Steps))
}

// MockReadBuffer is a mock of ReadBuffer interface.
type MockReadBuffer struct {
	ctrl     *gomock.Controller
	recorder *MockReadBufferMockRecorder
	isgomock struct{}
}

// MockReadBufferMockRecorder is the mock recorder for MockReadBuffer.
type MockReadBufferMockRecorder struct {
	mock *MockReadBuffer
}

// NewMockReadBuffer creates a new mock instance.
func NewMockReadBuffer(ctrl *gomock.Controller) *MockReadBuffer {
	mock := &MockReadBuffer{ctrl: ctrl}
	mock.recorder = &MockReadBufferMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReadBuffer) EXPECT() *MockReadBufferMockRecorder {
	return m.recorder
}

// Read mocks base method.
func (m *MockReadBuffer) Read(p []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Read", p)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Read indicates an expected call of Read.
func (mr *MockReadBufferMockRecorder) Read(p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Read", reflect.TypeOf((*MockReadBuffer)(nil).Read), p)
}
