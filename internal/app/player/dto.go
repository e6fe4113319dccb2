package player

import "streetlife/internal/domain/life"

type CreateRequest struct {
	UserID int64
}

type CreateResponse struct {
	Player life.Player `json:"player"`
}

type InfoRequest struct {
	UserID int64
}

type InfoResponse struct {
	Player life.Player `json:"player"`
}
