package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // сколько времени эффекту осталось
	Duration float64 // общая продолжительность эффекта
}

// ScreenEffects эффекты камеры, которые рендер читает, но не меняет.
type ScreenEffects struct {
	Shake        float64 // остаток тряски, секунды
	Flash        float64 // белая вспышка при смене секции
	DeathFade    float64 // 0..1, затемнение после смерти
	AdvancePulse float64
	ShowAdvance  bool
}
