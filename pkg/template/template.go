// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package template

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// 📝 Template is a target name containing $(i) placeholders
type Template string

// 🎯 Capture is one capture slot of a match
type Capture struct {
	Text    string // Matched text
	Present bool   // Whether the group participated in the match
}

// 📦 CaptureSet holds the capture slots of one match, slot 0 is the whole match
type CaptureSet []Capture

var placeholderRe = regexp.MustCompile(`\$\((\d+)\)`)

// Token returns the placeholder text for capture index i.
func Token(i int) string {
	return "$(" + strconv.Itoa(i) + ")"
}

// 🔍 Captures matches name against re and collects its capture slots.
// The second return value is false when re does not match.
func Captures(re *regexp.Regexp, name string) (CaptureSet, bool) {
	loc := re.FindStringSubmatchIndex(name)
	if loc == nil {
		return nil, false
	}

	set := make(CaptureSet, len(loc)/2)
	for i := range set {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			continue
		}
		set[i] = Capture{Text: name[start:end], Present: true}
	}

	return set, true
}

// 🔄 Substitute fills the placeholders of tmpl from captures.
//
// Slots are applied in ascending index order and each pass replaces every
// occurrence of its token with the literal slot text. Text inserted by pass i
// is therefore still subject to passes j > i but never to passes j <= i.
// Tokens of absent slots, and of indices past the end of captures, stay in
// the output unchanged.
func Substitute(tmpl Template, captures CaptureSet) string {
	out := string(tmpl)
	for i, c := range captures {
		if !c.Present {
			continue
		}
		out = strings.ReplaceAll(out, Token(i), c.Text)
	}
	return out
}

// Placeholders returns the distinct capture indices referenced by tmpl in
// ascending order.
func Placeholders(tmpl Template) []int {
	var idx []int
	for _, m := range placeholderRe.FindAllStringSubmatch(string(tmpl), -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// out of int range, can never name a real group
			continue
		}
		if !slices.Contains(idx, n) {
			idx = append(idx, n)
		}
	}
	slices.Sort(idx)
	return idx
}
