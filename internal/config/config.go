// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1024
	ScreenHeight  = 768
	MaxDeltaTime  = 0.06
	ClickCooldown = 300

	// Дорога, по которой ходят игрок и враги
	RoadTop    = ScreenHeight - 275
	RoadBottom = ScreenHeight - 100

	PlayerStartX = 50.0
	PlayerStartY = float64(RoadBottom)
	PlayerRadius = 22.0

	EnemyRadius       = 20.0
	EnemyHealthBarMax = 8 // полоса здоровья рассчитана на 8 делений
	EnemyHealthBarW   = 40.0
	EnemyHealthBarH   = 6.0

	ProjectileRadius = 8.0
	DropRadius       = 12.0
	DropShadowOffset = 12.0
	DropFloatHeight  = 5.0
	DropFloatPeriod  = 0.8 // секунды на половину качания
	DropSpinPeriod   = 1.5 // секунды на полный оборот

	AdvanceIndicatorX      = ScreenWidth - 150
	AdvanceIndicatorY      = ScreenHeight / 2
	AdvanceIndicatorRadius = 36.0
	AdvancePulsePeriod     = 0.5

	SoulBarX      = 100
	SoulBarY      = 50
	SoulBarWidth  = 150
	SoulBarHeight = 14
	LowSoul       = 30

	ShakeDuration  = 0.2
	ShakeIntensity = 0.005
	FlashDuration  = 0.2
	HurtFlashTime  = 0.15
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	SkyColor          = color.RGBA{36, 28, 48, 255}
	RoadColor         = color.RGBA{58, 52, 60, 255}
	RoadStripeColor   = color.RGBA{120, 110, 90, 255}
	PlayerColor       = color.RGBA{200, 40, 60, 255}
	PlayerDeadColor   = color.RGBA{90, 20, 30, 255}
	ProjectileColor   = color.RGBA{170, 0, 30, 255}
	CurrencyColor     = color.RGBA{255, 215, 0, 255}
	HealthDropColor   = color.RGBA{120, 200, 255, 255}
	ShadowColor       = color.RGBA{0, 0, 0, 76}
	HurtFlashColor    = color.RGBA{255, 255, 255, 255}
	HealthBarBgColor  = color.RGBA{0, 0, 0, 255}
	HealthBarFill     = color.RGBA{170, 0, 0, 255}
	HealthBarShine    = color.RGBA{255, 51, 51, 102}
	SoulHighColor     = color.RGBA{187, 0, 0, 255}
	SoulMidColor      = color.RGBA{221, 51, 0, 255}
	SoulLowColor      = color.RGBA{255, 0, 0, 255}
	AdvanceColor      = color.RGBA{50, 205, 50, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextAccentColor   = color.RGBA{255, 0, 0, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
)
