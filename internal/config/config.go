// internal/config/config.go
package config

import "image/color"

const (
	CanvasWidth   = 800 // игровое поле в координатах симуляции
	CanvasHeight  = 600
	SidebarWidth  = 300
	ScreenWidth   = CanvasWidth + SidebarWidth
	ScreenHeight  = CanvasHeight
	TicksPerSec   = 60
	MaxDeltaTime  = 0.06
	ClickCooldown = 150 // мс

	SelectRadius       = 25.0 // клик ближе этого выбирает врага или башню
	EnemyRadius        = 9.0
	BossRadius         = 14.0
	TowerRadius        = 14.0
	ProjectileRadius   = 3.0
	PathWidth          = 45.0
	SecondaryPathWidth = 35.0
	HealthBarWidth     = 24.0
	HealthBarHeight    = 4.0

	EntryRevealRadius = 130.0
	GateRevealRadius  = 160.0
	FogRegrowRate     = 0.005 // доля непрозрачности за тик при скорости 1x

	TextCharWidth  = 7
	TextLineHeight = 16

	StartingGold  = 550
	StartingLives = 100
)

var (
	BackgroundColor    = color.RGBA{10, 10, 13, 255}
	SidebarColor       = color.RGBA{18, 16, 16, 255}
	PathColor          = color.RGBA{18, 18, 24, 255}
	SecondaryPathColor = color.RGBA{13, 13, 18, 255}
	PathDashColor      = color.RGBA{26, 26, 36, 255}
	FogColor           = color.RGBA{2, 2, 4, 255}
	EntryColor         = color.RGBA{34, 197, 94, 255}
	GateColor          = color.RGBA{185, 28, 28, 255}
	TextLightColor     = color.RGBA{231, 229, 228, 255}
	TextDimColor       = color.RGBA{120, 113, 108, 255}
	GoldColor          = color.RGBA{234, 179, 8, 255}
	DangerColor        = color.RGBA{220, 38, 38, 255}
	SelectionColor     = color.RGBA{250, 250, 250, 200}
	RangeColor         = color.RGBA{250, 250, 250, 40}
	InvalidColor       = color.RGBA{220, 38, 38, 90}
	WarningColor       = color.RGBA{234, 179, 8, 90}
	TowerBaseColor     = color.RGBA{28, 28, 36, 255}
	ProjectileColor    = color.RGBA{253, 224, 71, 255}
	HealthFullColor    = color.RGBA{34, 197, 94, 255}
	HealthLowColor     = color.RGBA{220, 38, 38, 255}
	ButtonColor        = color.RGBA{41, 37, 36, 255}
	ButtonActiveColor  = color.RGBA{127, 29, 29, 255}
	StrokeWidth        = float32(2.0)
	SpeedButtonColors  = []color.Color{
		color.RGBA{70, 130, 180, 220}, // x1
		color.RGBA{220, 60, 60, 220},  // x2
	}
)
