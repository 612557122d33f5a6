package domain

import "time"

// CREATE TABLE students (
//     id          BIGSERIAL PRIMARY KEY,
//     name        TEXT NOT NULL,
//     cgpa        DOUBLE PRECISION NOT NULL,
//     ielts       DOUBLE PRECISION NOT NULL,
//     budget      BIGINT NOT NULL,
//     country     TEXT NOT NULL,
//     field       TEXT NOT NULL,
//     career_goal TEXT NOT NULL,
//     created_at  TIMESTAMPTZ DEFAULT NOW(),
//     updated_at  TIMESTAMPTZ
// );

type Student struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	CGPA       float64   `gorm:"column:cgpa;not null" json:"cgpa"`
	IELTS      float64   `gorm:"column:ielts;not null" json:"ielts"`
	Budget     int64     `gorm:"column:budget;not null" json:"budget"`
	Country    string    `gorm:"column:country;not null" json:"country"`
	Field      string    `gorm:"column:field;not null" json:"field"`
	CareerGoal string    `gorm:"column:career_goal;not null" json:"career_goal"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}
