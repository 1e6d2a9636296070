// Package timer откладывает вызовы по часам симуляции: спавн с задержкой,
// конец атаки, возврат после попадания.
package timer

import (
	"container/heap"

	"go-wave-brawler/internal/types"
)

// NoOwner для таймеров, которые живут до закрытия сцены.
const NoOwner types.EntityID = 0

// Callback выполняется в потоке тика, когда наступает его время.
type Callback func()

type entry struct {
	at    float64
	seq   uint64
	owner types.EntityID
	fn    Callback
	index int
}

// Queue упорядоченное множество (время срабатывания, колбэк). Отмена
// удаляет все записи владельца, когда его сущность уничтожена.
type Queue struct {
	now     float64
	seq     uint64
	items   entryHeap
	byOwner map[types.EntityID][]*entry
}

func NewQueue() *Queue {
	return &Queue{byOwner: make(map[types.EntityID][]*entry)}
}

// Now текущее время часов очереди, секунды.
func (q *Queue) Now() float64 {
	return q.now
}

// Len число ожидающих таймеров.
func (q *Queue) Len() int {
	return len(q.items)
}

// After планирует fn через delay секунд от текущего времени.
func (q *Queue) After(delay float64, owner types.EntityID, fn Callback) {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	e := &entry{at: q.now + delay, seq: q.seq, owner: owner, fn: fn}
	heap.Push(&q.items, e)
	if owner != NoOwner {
		q.byOwner[owner] = append(q.byOwner[owner], e)
	}
}

// Pending сколько таймеров ждёт у владельца.
func (q *Queue) Pending(owner types.EntityID) int {
	return len(q.byOwner[owner])
}

// Advance сдвигает часы на dt и выполняет всё, что наступило, в порядке
// времени, а при равенстве в порядке постановки. Возвращает число вызовов.
func (q *Queue) Advance(dt float64) int {
	if dt > 0 {
		q.now += dt
	}
	fired := 0
	for len(q.items) > 0 && q.items[0].at <= q.now {
		e := heap.Pop(&q.items).(*entry)
		q.forget(e)
		fired++
		if e.fn != nil {
			e.fn()
		}
	}
	return fired
}

// CancelOwner снимает все ожидающие таймеры владельца.
func (q *Queue) CancelOwner(owner types.EntityID) int {
	if owner == NoOwner {
		return 0
	}
	entries := q.byOwner[owner]
	for _, e := range entries {
		if e.index >= 0 {
			heap.Remove(&q.items, e.index)
		}
	}
	delete(q.byOwner, owner)
	return len(entries)
}

// Clear сбрасывает всё; используется при закрытии сцены.
func (q *Queue) Clear() {
	q.items = nil
	q.byOwner = make(map[types.EntityID][]*entry)
}

func (q *Queue) forget(e *entry) {
	if e.owner == NoOwner {
		return
	}
	list := q.byOwner[e.owner]
	for i, other := range list {
		if other == e {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(q.byOwner, e.owner)
	} else {
		q.byOwner[e.owner] = list
	}
}

// entryHeap очередь с приоритетом по (at, seq)
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *entryHeap) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[0 : n-1]
	return item
}
