package model

import "time"

type Player struct {
	ID         int64 `gorm:"primaryKey"`
	UserID     int64
	Hunger     int32
	Rest       int32
	Health     int32
	Level      int32
	Age        int32
	Authority  int32
	Day        int32
	DeadlyDays int32
	Alive      bool
	Version    int64
	UpdatedAt  time.Time
}

func (Player) TableName() string { return "player" }

type Currency struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func (Currency) TableName() string { return "currency" }

type Balance struct {
	ID         int64 `gorm:"primaryKey"`
	CurrencyID int64
	PlayerID   int64
	Amount     int64
	UpdatedAt  time.Time
}

func (Balance) TableName() string { return "balance" }

type HomePlayer struct {
	HomeID   int64 `gorm:"primaryKey"`
	PlayerID int64 `gorm:"primaryKey"`
}

func (HomePlayer) TableName() string { return "home_player" }

type SkillPlayer struct {
	SkillID  int64 `gorm:"primaryKey"`
	PlayerID int64 `gorm:"primaryKey"`
}

func (SkillPlayer) TableName() string { return "skill_player" }

type TransportPlayer struct {
	TransportID int64 `gorm:"primaryKey"`
	PlayerID    int64 `gorm:"primaryKey"`
}

func (TransportPlayer) TableName() string { return "transport_player" }

type BusinessPlayer struct {
	BusinessID int64 `gorm:"primaryKey"`
	PlayerID   int64 `gorm:"primaryKey"`
}

func (BusinessPlayer) TableName() string { return "business_player" }

type PlayerEvent struct {
	ID         int64 `gorm:"primaryKey"`
	PlayerID   int64
	Type       string
	OccurredAt time.Time
	Payload    []byte
}

func (PlayerEvent) TableName() string { return "player_event" }
