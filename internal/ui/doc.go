// Package ui is the dashboard: a focus controller over three panels, a
// cyclic select list with per-item scroll offsets, and the renderer that
// draws them with the circle-of-fifths canvas each frame.
//
// Core pieces:
//   - FocusController: which Panel receives routed keys
//   - SelectList: cyclic selection plus saturating scroll offsets
//   - AppModel: routes input.Event values and renders full frames
//   - Canvas: text-cell raster of a radial.Diagram
//
// AppModel runs either under Bubble Tea (AsTeaModel) or headless (Run).
package ui
