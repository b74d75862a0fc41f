// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package view holds the presentation state of the district map.

# Presenter

Presenter builds everything a map client draws from RegionStats: the
tooltip lines, the detail panel with its badge, the three district styles
(base, hover, selected) and the legend. Counts use Czech digit grouping and
percentages a decimal comma ("66,67%").

# Explorer

Explorer implements Interaction over an explicit Session and sends style,
tooltip and panel changes to a Renderer:

	e := view.NewExplorer(presenter, lookup, renderer)
	e.OnHover("Praha")
	e.OnSelect("Kladno")
	e.OnReset()

Hovering never restyles the selected district, and selecting a district
returns the previous one to its base style.
*/
package view
