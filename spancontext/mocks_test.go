package spancontext

import "github.com/stretchr/testify/mock"

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Next() uint64 {
	return m.Called().Get(0).(uint64)
}

func (m *mockGenerator) NextTraceID(use128 bool) (uint64, uint64) {
	arguments := m.Called(use128)
	return arguments.Get(0).(uint64), arguments.Get(1).(uint64)
}

type mockSampler struct {
	mock.Mock
}

func (m *mockSampler) Decide(traceID uint64, operationName string) bool {
	return m.Called(traceID, operationName).Bool(0)
}
