// cmd/tui/log.go
package main

import (
	"fmt"

	"go-rune-halls/internal/event"
)

// messageTopics are the bus events shown under the hall.
var messageTopics = []event.Type{
	event.HeroDead, event.HeroHitByArrow, event.HeroStabbed, event.RuneCollected,
	event.RuneTeleported, event.MonsterSpawned, event.AddTime, event.AddLives, event.GameOver,
}

// messageLog renders recent bus events as text.
type messageLog struct {
	rec *event.Recorder
}

func newMessageLog(d *event.Dispatcher) *messageLog {
	rec := event.NewRecorder(5)
	rec.SubscribeTo(d, messageTopics...)
	return &messageLog{rec: rec}
}

func (l *messageLog) lines() []string {
	events := l.rec.Events()
	out := make([]string, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		out = append(out, describe(events[i]))
	}
	return out
}

func describe(e event.Event) string {
	switch data := e.Data.(type) {
	case event.MonsterSpawnedData:
		return fmt.Sprintf("%s (%s) appeared at %s", data.Kind, data.Strategy, data.Position)
	case event.HitData:
		return fmt.Sprintf("%s from %s", e.Type, data.Attacker)
	case event.AddTimeData:
		return fmt.Sprintf("+%s", data.Amount)
	case event.GameOverData:
		return fmt.Sprintf("game over: %s", data.Reason)
	}
	return string(e.Type)
}
