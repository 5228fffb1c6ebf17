package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"presensi_backend/internals/databases/dbtest"
	"presensi_backend/internals/features/attendance/headcount/dto"
	"presensi_backend/internals/features/attendance/headcount/model"
	"presensi_backend/internals/helpers/apperr"
	"presensi_backend/internals/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(n int) dto.UpdateHeadcountRequest { return dto.UpdateHeadcountRequest{Count: &n} }

func TestHeadcountSingleton(t *testing.T) {
	db := dbtest.Open(t)
	reg := prometheus.NewRegistry()
	svc := New(db, 0, metrics.NewAttendance(reg))
	ctx := context.Background()

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)
	assert.Equal(t, 0, dto.FromHeadcountModel(latest).Count)

	t1 := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return t1 }
	_, err = svc.Update(ctx, count(5))
	require.NoError(t, err)

	t2 := t1.Add(time.Minute)
	svc.Now = func() time.Time { return t2 }
	_, err = svc.Update(ctx, count(7))
	require.NoError(t, err)

	var rows int64
	require.NoError(t, db.Model(&model.HeadcountSnapshotModel{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	latest, err = svc.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 7, latest.HeadcountCount)
	assert.True(t, latest.HeadcountRecordedAt.Equal(t2))

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP presensi_headcount_current Latest reported headcount.
# TYPE presensi_headcount_current gauge
presensi_headcount_current 7
`), "presensi_headcount_current"))
}

func TestHeadcountValidation(t *testing.T) {
	svc := New(dbtest.Open(t), 0, nil)

	_, err := svc.Update(context.Background(), dto.UpdateHeadcountRequest{})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	_, err = svc.Update(context.Background(), count(-1))
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	_, err = svc.Update(context.Background(), count(0))
	assert.NoError(t, err)
}
