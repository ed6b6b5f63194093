package ui2d

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Overlay theme, deep-water blues.
var (
	ColorPanelBg      = Color{0.02, 0.07, 0.12, 0.85}
	ColorPanelBorder  = Color{0.2, 0.4, 0.5, 1}
	ColorButtonNormal = Color{0.05, 0.15, 0.22, 1}
	ColorButtonHover  = Color{0.1, 0.25, 0.35, 1}
	ColorButtonActive = Color{0.05, 0.4, 0.55, 1}
	ColorInputBg      = Color{0.01, 0.04, 0.07, 1}
	ColorInputBorder  = Color{0.15, 0.3, 0.4, 1}
	ColorText         = Color{0.9, 0.95, 0.95, 1}
	ColorHighlight    = Color{0.2, 0.8, 0.9, 1}
)
