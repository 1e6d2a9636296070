package interfaces

import (
	"context"
	"time"
)

// SessionResult итог забега, который уходит наружу после смерти игрока.
type SessionResult struct {
	SessionID      string    `json:"session_id"`
	Account        string    `json:"account"`
	Kills          int       `json:"kills"`
	WaveReached    int       `json:"wave_reached"`
	CurrencyEarned int       `json:"currency_earned"`
	EndedAt        time.Time `json:"ended_at"`
}

// ResultSink внешний получатель результата: сохранение по аккаунту и
// переход к экрану итогов. Симуляция только вызывает Submit.
type ResultSink interface {
	Submit(ctx context.Context, result SessionResult) error
}
