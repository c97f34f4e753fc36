// internal/system/music.go
package system

import (
	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/utils"
)

// MusicFader плавно ведёт громкость фоновой музыки к целевой. Звук сам по
// себе не воспроизводится: наружу отдаётся только громкость.
type MusicFader struct {
	volume      float64
	target      float64
	fading      bool
	muted       bool
	fadeSeconds float64
	delay       float64 // кадры до начала отложенного затухания
	delayed     float64 // цель отложенного затухания
	hasDelayed  bool
}

func NewMusicFader(fadeSeconds float64) *MusicFader {
	return &MusicFader{fadeSeconds: fadeSeconds}
}

// FadeIn начинает подъём громкости с from до to.
func (m *MusicFader) FadeIn(from, to float64) {
	m.hasDelayed = false
	m.volume = from
	m.FadeTo(to)
}

// FadeTo начинает движение к target с текущей громкости.
func (m *MusicFader) FadeTo(target float64) {
	m.target = target
	m.fading = m.volume != target
}

// FadeToAfter запускает FadeTo(target) через delaySeconds. Если музыка
// выключена, ничего не делает.
func (m *MusicFader) FadeToAfter(target, delaySeconds float64) {
	if m.muted {
		return
	}
	m.delayed = target
	m.delay = delaySeconds * config.FramesPerSecond
	m.hasDelayed = true
}

// Update продвигает затухание на deltaTime кадров.
func (m *MusicFader) Update(deltaTime float64) {
	if m.hasDelayed {
		m.delay -= deltaTime
		if m.delay <= 0 {
			m.hasDelayed = false
			m.FadeTo(m.delayed)
		}
	}
	if !m.fading {
		return
	}
	step := (deltaTime / config.FramesPerSecond) / m.fadeSeconds
	m.volume = utils.Approach(m.volume, m.target, step)
	if m.volume == m.target {
		m.fading = false
	}
}

// ToggleMute переключает звук и возвращает новое состояние.
func (m *MusicFader) ToggleMute() bool {
	m.muted = !m.muted
	return m.muted
}

func (m *MusicFader) Muted() bool {
	return m.muted
}

func (m *MusicFader) Fading() bool {
	return m.fading
}

// Volume — громкость с учётом mute.
func (m *MusicFader) Volume() float64 {
	if m.muted {
		return 0
	}
	return m.volume
}
