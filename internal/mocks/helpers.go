package mocks

import "github.com/stretchr/testify/mock"

// maxLogFields bounds the field arities registered by NewPermissiveLogger.
const maxLogFields = 8

// NewPermissiveLogger returns a Logger mock that accepts any log call with up to
// maxLogFields fields at every level.
func NewPermissiveLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	l := NewLogger(t)
	for n := 0; n <= maxLogFields; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return l
}

// NewPermissiveMetricsRecorder returns a MetricsRecorder mock that accepts every recording.
func NewPermissiveMetricsRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MetricsRecorder {
	m := NewMetricsRecorder(t)
	m.EXPECT().RecordJobMutation(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().RecordJobExecution(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.EXPECT().RecordProviderFetch(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().RecordReadingCache(mock.Anything).Maybe()
	return m
}
