package action

import "streetlife/internal/domain/life"

type Request struct {
	UserID   int64
	Category life.Category
	ItemID   int64
}

type Response struct {
	Player     life.Player     `json:"player"`
	Events     []life.Event    `json:"events"`
	ResultCode life.ResultCode `json:"result_code"`
}
