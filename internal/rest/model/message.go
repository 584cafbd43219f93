package model

import (
	"time"

	"github.com/sergeii/sg41/internal/core/entities/indicator"
	"github.com/sergeii/sg41/internal/core/entities/message"
	"github.com/sergeii/sg41/internal/core/usecases/cryptmessage"
)

type CryptRequest struct {
	Text      string `binding:"required"                   json:"text"`
	Indicator string `binding:"required_without=Positions" json:"indicator"` // A B C D 01 00
	Positions []int  `binding:"required_without=Indicator" json:"positions"` // 0 1 2 3 0 0
	Keyboard  bool   `json:"keyboard"`
}

// GetIndicator prefers the printed indicator over the raw positions.
func (r CryptRequest) GetIndicator() (indicator.Indicator, error) {
	if r.Indicator != "" {
		return indicator.Parse(r.Indicator)
	}
	return indicator.New(r.Positions)
}

type CryptResult struct {
	Message
	Final          string `json:"final"`
	FinalPositions []int  `json:"final_positions"`
}

func NewCryptResultFromDomain(resp cryptmessage.Response) CryptResult {
	return CryptResult{
		Message:        NewMessageFromDomain(resp.Message),
		Final:          resp.Final.String(),
		FinalPositions: resp.Final.Positions(),
	}
}

type Message struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Direction string    `json:"direction"`
	Indicator string    `json:"indicator"`
	Positions []int     `json:"positions"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessageFromDomain(msg message.Message) Message {
	return Message{
		ID:        msg.ID,
		Key:       msg.KeySlug,
		Direction: msg.Direction.String(),
		Indicator: msg.Indicator.String(),
		Positions: msg.Indicator.Positions(),
		Input:     msg.Input,
		Output:    msg.Output,
		CreatedAt: msg.CreatedAt,
	}
}

type MessageFilterForm struct {
	Limit int `binding:"omitempty,gte=0" form:"limit"`
}
