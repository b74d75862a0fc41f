// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides fixtures and assertions shared by package tests.

  - SampleCSV, SampleGeoJSON, SampleVotesJSON: a three-district survey with
    a plurality, a tie and a single-answer district, plus a boundary file
    with one district that has no answers
  - WriteFile: write a fixture into t.TempDir()
  - SetupTestDB: temp-file SQLite database with the schema applied
  - MakeRequest, AssertStatus, AssertJSON, AssertContentType: HTTP helpers
*/
package testutil
