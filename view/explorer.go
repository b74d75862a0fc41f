// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

// Interaction is what a map adapter calls on pointer events. Regions are
// passed as labels and matched by their normalized key.
type Interaction interface {
	// OnHover moves the pointer onto region; "" means it left every region.
	OnHover(region string)
	OnSelect(region string)
	// OnReset drops the hover and the selection.
	OnReset()
}

// Renderer receives the visible effects of an interaction.
type Renderer interface {
	SetStyle(region string, style models.Style)
	ShowTooltip(region string, tooltip models.Tooltip)
	HideTooltip()
	ShowPanel(panel models.Panel)
	ClearPanel()
}

// Session is the view state of one map. Both fields hold region keys.
type Session struct {
	Hovered  string
	Selected string
}

// Lookup resolves a region label to its display name and stats.
type Lookup func(region string) (name string, stats models.RegionStats)

// Explorer implements Interaction for one Session. It is not safe for
// concurrent use.
type Explorer struct {
	presenter Presenter
	lookup    Lookup
	renderer  Renderer
	session   Session
}

var _ Interaction = (*Explorer)(nil)

func NewExplorer(presenter Presenter, lookup Lookup, renderer Renderer) *Explorer {
	return &Explorer{
		presenter: presenter,
		lookup:    lookup,
		renderer:  renderer,
	}
}

func (e *Explorer) Session() Session {
	return e.session
}

func (e *Explorer) OnHover(region string) {
	key := aggregate.NormalizeKey(region)
	if key == e.session.Hovered {
		return
	}

	e.unhover()
	if key == "" {
		e.renderer.HideTooltip()
		return
	}

	name, stats := e.lookup(region)
	e.session.Hovered = key
	if key != e.session.Selected {
		e.renderer.SetStyle(key, e.presenter.HoverStyle(stats))
	}
	e.renderer.ShowTooltip(key, e.presenter.Tooltip(name, stats))
}

func (e *Explorer) OnSelect(region string) {
	key := aggregate.NormalizeKey(region)
	if key == "" {
		return
	}

	if prev := e.session.Selected; prev != "" && prev != key {
		e.session.Selected = ""
		e.restyle(prev)
	}

	name, stats := e.lookup(region)
	e.session.Selected = key
	e.renderer.SetStyle(key, e.presenter.SelectedStyle(stats))
	e.renderer.ShowPanel(e.presenter.Panel(name, stats))
}

func (e *Explorer) OnReset() {
	e.unhover()
	e.renderer.HideTooltip()

	if prev := e.session.Selected; prev != "" {
		e.session.Selected = ""
		e.restyle(prev)
	}
	e.renderer.ClearPanel()
}

func (e *Explorer) unhover() {
	prev := e.session.Hovered
	if prev == "" {
		return
	}
	e.session.Hovered = ""
	if prev != e.session.Selected {
		e.restyle(prev)
	}
}

// restyle puts key back to the style its current state calls for.
func (e *Explorer) restyle(key string) {
	_, stats := e.lookup(key)
	switch key {
	case e.session.Selected:
		e.renderer.SetStyle(key, e.presenter.SelectedStyle(stats))
	case e.session.Hovered:
		e.renderer.SetStyle(key, e.presenter.HoverStyle(stats))
	default:
		e.renderer.SetStyle(key, e.presenter.BaseStyle(stats))
	}
}
