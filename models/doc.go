// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines input, domain, presentation and response types.

# Input Types

  - SurveyRecord: one (word, region) survey answer
  - PrecomputedStats: one district entry of votes.json
  - Vocabulary / VocabularyWord: accepted answers, colours, name aliases

# Domain Types

  - RegionStats: counts, total, percentages, dominant word and tie flag
  - SummaryLine: word, count, percentage (ordered by descending count)

RegionStats.Dominant is nil when the region has no responses. When IsTie is
set, Dominant still holds a deterministic choice (the first word, in
first-seen order, to reach the maximum) but it must not be shown as a winner.

# Presentation Types

  - Style: fill/stroke settings for one district polygon
  - Legend / LegendEntry: static legend content
  - Tooltip, Panel, PanelItem: hover and detail texts

# Response Types

  - RegionResponse, RegionsResponse, ReloadResponse, Snapshot
  - ErrorResponse: error, message

# Constants

Dataset modes:

	ModeRaw         = "raw"
	ModePrecomputed = "precomputed"
*/
package models
