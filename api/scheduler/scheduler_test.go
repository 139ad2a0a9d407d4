package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mocksdb "github.com/brigadapm/ocorrencias-api/databases/mocks"
)

func TestSchedulerStartStop(t *testing.T) {
	s := NewScheduler(&mocksdb.ReportDatabase{})
	assert.NotNil(t, s)

	s.Start()
	s.Stop()
}

func TestRunRetentionSweep(t *testing.T) {
	db := &mocksdb.ReportDatabase{}
	db.On("PurgeExpired", mock.Anything, mock.Anything).Return(int64(2), nil)

	s := NewScheduler(db)
	s.runRetentionSweep()

	db.AssertExpectations(t)
}
