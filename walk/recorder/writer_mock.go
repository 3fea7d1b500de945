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

// MockRowWriter is a mock of RowWriter interface.
type MockRowWriter struct {
	ctrl     *gomock.Controller
	recorder *MockRowWriterMockRecorder
	isgomock struct{}
}

// MockRowWriterMockRecorder is the mock recorder for MockRowWriter.
type MockRowWriterMockRecorder struct {
	mock *MockRowWriter
}

// NewMockRowWriter creates a new mock instance.
func NewMockRowWriter(ctrl *gomock.Controller) *MockRowWriter {
	mock := &MockRowWriter{ctrl: ctrl}
	mock.recorder = &MockRowWriterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRowWriter) EXPECT() *MockRowWriterMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockRowWriter) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockRowWriterMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockRowWriter)(nil).Close))
}

// WriteRow mocks base method.
func (m *MockRowWriter) WriteRow(row walk.Row) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteRow", row)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteRow indicates an expected call of WriteRow.
func (mr *MockRowWriterMockRecorder) WriteRow(row any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteRow", reflect.TypeOf((*MockRowWriter)(nil).WriteRow), row)
}

// MockWriteBuffer is a mock of WriteBuffer interface.
type MockWriteBuffer struct {
	ctrl     *gomock.Controller
	recorder *MockWriteBufferMockRecorder
	isgomock struct{}
}

// MockWriteBufferMockRecorder is the mock recorder for MockWriteBuffer.
type MockWriteBufferMockRecorder struct {
	mock *MockWriteBuffer
}

// NewMockWriteBuffer creates a new mock instance.
func NewMockWriteBuffer(ctrl *gomock.Controller) *MockWriteBuffer {
	mock := &MockWriteBuffer{ctrl: ctrl}
	mock.recorder = &MockWriteBufferMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWriteBuffer) EXPECT() *MockWriteBufferMockRecorder {
	return m.recorder
}

// Flush mocks base method.
func (m *MockWriteBuffer) Flush() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Flush")
	ret0, _ := ret[0].(error)
	return ret0
}

// Flush indicates an expected call of Flush.
func (mr *MockWriteBufferMockRecorder) Flush() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Flush", reflect.TypeOf((*MockWriteBuffer)(nil).Flush))
}

// Write mocks base method.
func (m *MockWriteBuffer) Write(p []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Write", p)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Write indicates an expected call of Write.
func (mr *MockWriteBufferMockRecorder) Write(p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Write", reflect.TypeOf((*MockWriteBuffer)(nil).Write), p)
}
