package model

import (
	"github.com/sergeii/sg41/internal/core/entities/indicator"
)

type WheelsetRequest struct {
	Stream     []int  `binding:"required_without=Plaintext" json:"stream"`
	Plaintext  string `binding:"required_without=Stream"    json:"plaintext"`
	Ciphertext string `binding:"required_with=Plaintext"    json:"ciphertext"`
	// positions to try for some of the wheels, keyed by wheel number 1 to 6
	Known map[int][]int `json:"known"`
}

type WheelsetResult struct {
	Indicators []string `json:"indicators"`
	Positions  [][]int  `json:"positions"`
}

func NewWheelsetResultFromDomain(found []indicator.Indicator) WheelsetResult {
	result := WheelsetResult{
		Indicators: make([]string, 0, len(found)),
		Positions:  make([][]int, 0, len(found)),
	}
	for _, ind := range found {
		result.Indicators = append(result.Indicators, ind.String())
		result.Positions = append(result.Positions, ind.Positions())
	}
	return result
}
