// internal/domain/models/attendance.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance status values.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// IsValidAttendanceStatus checks if a value is a valid attendance status.
func IsValidAttendanceStatus(value string) bool {
	switch value {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// AttendanceRecord records one student's attendance for one day.
type AttendanceRecord struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	SchoolID  primitive.ObjectID  `bson:"school_id" json:"school_id"`
	ClassID   *primitive.ObjectID `bson:"class_id,omitempty" json:"class_id,omitempty"`
	StudentID primitive.ObjectID  `bson:"student_id" json:"student_id"`
	Date      string              `bson:"date" json:"date"` // YYYY-MM-DD, school-local
	Status    string              `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
