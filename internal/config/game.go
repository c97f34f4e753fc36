// internal/config/game.go
package config

import (
	"errors"
	"fmt"

	"go-sheep-picker/pkg/geom"
)

// Config — настраиваемые параметры игровой сессии. Передаётся в app.NewGame
// при старте и не меняется до конца сессии.
type Config struct {
	Field          geom.Rect   // игровое поле
	FieldBorder    float64     // толщина рамки поля
	EdgePadding    float64     // доп. отступ от рамки
	SpawnInset     float64     // отступ области появления от края поля
	Yard           geom.Rect   // загон
	YardMargin     float64     // зона вокруг загона, куда не заходят свободные животные
	SafeSpawn      geom.Vector // запасная точка появления
	PlacementTries int

	HeroStart  geom.Vector
	HeroRadius float64
	HeroSpeed  float64

	AnimalRadius     float64
	AnimalSpeed      float64
	PatrolSpeedRatio float64
	PatrolWaitMin    float64
	PatrolWaitMax    float64
	PatrolWander     float64 // радиус запасной цели патруля
	FollowSlack      float64
	ArrivalEpsilon   float64

	CollectionRadius  float64
	MaxGroupSize      int
	GameDuration      float64 // секунды
	InitialAnimalsMin int
	InitialAnimalsMax int
	MaxAnimals        int // 0 — без ограничения

	SpawnIntervalMin float64 // кадры
	SpawnIntervalMax float64

	GlowFloor     float64
	GlowCeiling   float64
	GlowPulseRate float64
	GlowDecayRate float64

	MusicNormalVolume float64
	MusicFadedVolume  float64
	MusicFadeSeconds  float64
	MusicFadeDelay    float64 // секунды после конца игры

	Seed      int64 // 0 — от текущего времени
	PprofAddr string
}

// Default возвращает каноническую конфигурацию игры.
func Default() Config {
	return Config{
		Field:          geom.NewRect(0, 0, ScreenWidth, ScreenHeight),
		FieldBorder:    2,
		EdgePadding:    5,
		SpawnInset:     50,
		Yard:           geom.NewRect(500, 350, 300, 140),
		YardMargin:     20,
		SafeSpawn:      geom.Vec(150, 150),
		PlacementTries: 50,

		HeroStart:  geom.Vec(150, 150),
		HeroRadius: 25,
		HeroSpeed:  3,

		AnimalRadius:     15,
		AnimalSpeed:      2,
		PatrolSpeedRatio: 0.5,
		PatrolWaitMin:    30,
		PatrolWaitMax:    90,
		PatrolWander:     100,
		FollowSlack:      40,
		ArrivalEpsilon:   2,

		CollectionRadius:  50,
		MaxGroupSize:      5,
		GameDuration:      60,
		InitialAnimalsMin: 5,
		InitialAnimalsMax: 10,
		MaxAnimals:        0,

		SpawnIntervalMin: 90,
		SpawnIntervalMax: 90,

		GlowFloor:     0.3,
		GlowCeiling:   1,
		GlowPulseRate: 0.03,
		GlowDecayRate: 0.05,

		MusicNormalVolume: 0.3,
		MusicFadedVolume:  0.05,
		MusicFadeSeconds:  40,
		MusicFadeDelay:    2.5,

		PprofAddr: "localhost:6060",
	}
}

// SpawnArea — область, внутри которой выбираются точки появления и цели патруля.
func (c *Config) SpawnArea() geom.Rect {
	return c.Field.Inset(c.SpawnInset)
}

// YardExclusion — загон, расширенный на YardMargin.
func (c *Config) YardExclusion() geom.Rect {
	return c.Yard.Inset(-c.YardMargin)
}

// Validate проверяет согласованность параметров.
func (c *Config) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must have positive size, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Yard.Width <= 0 || c.Yard.Height <= 0 {
		errs = append(errs, fmt.Errorf("yard must have positive size, got %vx%v", c.Yard.Width, c.Yard.Height))
	}
	if c.HeroSpeed <= 0 || c.AnimalSpeed <= 0 {
		errs = append(errs, errors.New("speeds must be positive"))
	}
	if c.CollectionRadius <= 0 {
		errs = append(errs, fmt.Errorf("collection radius must be positive, got %v", c.CollectionRadius))
	}
	if c.MaxGroupSize < 1 {
		errs = append(errs, fmt.Errorf("max group size must be at least 1, got %d", c.MaxGroupSize))
	}
	if c.GameDuration <= 0 {
		errs = append(errs, fmt.Errorf("game duration must be positive, got %v", c.GameDuration))
	}
	if c.SpawnIntervalMin <= 0 || c.SpawnIntervalMax < c.SpawnIntervalMin {
		errs = append(errs, fmt.Errorf("spawn interval must satisfy 0 < min <= max, got [%v, %v]", c.SpawnIntervalMin, c.SpawnIntervalMax))
	}
	if c.PatrolWaitMax < c.PatrolWaitMin || c.PatrolWaitMin < 0 {
		errs = append(errs, fmt.Errorf("patrol wait must satisfy 0 <= min <= max, got [%v, %v]", c.PatrolWaitMin, c.PatrolWaitMax))
	}
	if c.InitialAnimalsMin < 0 || c.InitialAnimalsMax < c.InitialAnimalsMin {
		errs = append(errs, fmt.Errorf("initial animals must satisfy 0 <= min <= max, got [%d, %d]", c.InitialAnimalsMin, c.InitialAnimalsMax))
	}
	if c.PlacementTries < 1 {
		errs = append(errs, fmt.Errorf("placement tries must be at least 1, got %d", c.PlacementTries))
	}
	if c.MaxAnimals < 0 {
		errs = append(errs, fmt.Errorf("max animals must not be negative, got %d", c.MaxAnimals))
	}
	if c.GlowFloor < 0 || c.GlowCeiling > 1 || c.GlowFloor >= c.GlowCeiling {
		errs = append(errs, fmt.Errorf("glow bounds must satisfy 0 <= floor < ceiling <= 1, got [%v, %v]", c.GlowFloor, c.GlowCeiling))
	}
	return errors.Join(errs...)
}
