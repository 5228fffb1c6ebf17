package model

import "time"

// SingletonID: satu-satunya primary key yang diizinkan.
const SingletonID int16 = 1

// HeadcountSnapshotModel hanya boleh punya satu baris (PK tetap + CHECK).
type HeadcountSnapshotModel struct {
	HeadcountID         int16     `gorm:"primaryKey;autoIncrement:false;check:chk_headcount_singleton,headcount_id = 1;column:headcount_id" json:"-"`
	HeadcountCount      int       `gorm:"not null;default:0;check:chk_headcount_count,headcount_count >= 0;column:headcount_count"       json:"count"`
	HeadcountRecordedAt time.Time `gorm:"not null;column:headcount_recorded_at"                                                          json:"timestamp"`
}

func (HeadcountSnapshotModel) TableName() string { return "headcount_snapshots" }
