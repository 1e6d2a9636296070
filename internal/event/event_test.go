package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	waves := &recorder{}
	d.Subscribe(EnemyKilled, kills)
	d.Subscribe(WaveCleared, waves)

	d.Dispatch(Event{Type: EnemyKilled, Data: EntityData{ID: 4}})
	assert.Len(t, kills.got, 1)
	assert.Empty(t, waves.got)
	assert.Equal(t, EntityData{ID: 4}, kills.got[0].Data)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	calls := 0
	d.Subscribe(PlayerDied, r)
	d.Subscribe(PlayerDied, ListenerFunc(func(Event) { calls++ }))

	d.Unsubscribe(PlayerDied, r)
	// функция-подписчик остаётся, отписка её не трогает и не паникует
	d.Unsubscribe(PlayerDied, ListenerFunc(func(Event) {}))
	d.Dispatch(Event{Type: PlayerDied})
	assert.Empty(t, r.got)
	assert.Equal(t, 1, calls)
}
