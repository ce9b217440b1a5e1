//go:build !ebiten

package ui

import "noisefield/internal/core"

// PanelWidth is the width of the HUD panel in logical pixels.
const PanelWidth = 220

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Field, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
