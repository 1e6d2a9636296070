package component

// Wave состояние текущей волны.
type Wave struct {
	Number           int
	Index            int // сколько врагов в волне
	Cycle            int
	Bars             int
	Speed            float64
	Damage           int
	Spawned          int
	EnemiesRemaining int
	Cleared          bool
}

// Section текущий сегмент уровня и защита от повторного перехода.
type Section struct {
	Current       int
	Total         int
	Transitioning bool
	Elapsed       float64 // время с начала анимации перехода
	Shifted       float64 // на сколько уже сдвинули мир в этом переходе
}

// Background две плитки дороги, которые перекладываются друг за друга.
type Background struct {
	Tiles     [2]float64
	TileWidth float64
}
