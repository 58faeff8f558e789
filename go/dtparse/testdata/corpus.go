/*
Copyright 2019 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package testdata holds a small corpus of real-world date/time strings,
// each paired with the pattern that should parse it, for use as fuzz
// seeds. The strings are drawn from a heuristic date-guessing project's
// own test table, repurposed here as literal data rather than as an
// imported dependency.
package testdata

// Case pairs an input string with the pattern it's expected to parse
// against successfully.
type Case struct {
	Pattern string
	Input   string
}

// Corpus seeds the abut-run and longest-match code paths with strings
// that were never hand-picked for this parser.
var Corpus = []Case{
	{Pattern: "MMM d, yyyy", Input: "Oct 7, 1970"},
	{Pattern: "MMM d, yyyy h:mm:ss a", Input: "Feb 8, 2009 5:57:51 AM"},
	{Pattern: "MMM d, yyyy h:mm:ss a", Input: "May 8, 2009 5:57:51 PM"},
	{Pattern: "d MMM yyyy", Input: "7 Oct 1970"},
	{Pattern: "d MMMM yyyy", Input: "7 September 1970"},
	{Pattern: "EEE MMM d HH:mm:ss yyyy", Input: "Fri May 8 17:57:51 2009"},
	{Pattern: "yyyy-MM-dd", Input: "2020-07-20"},
	{Pattern: "yyyyMMdd", Input: "19960710"},
	{Pattern: "HHmmss", Input: "235959"},
	{Pattern: "MM/dd/yy", Input: "01/11/12"},
}
