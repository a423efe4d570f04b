// Copyright 2020 The wxstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmp contains helpful functions for comparing values.
package cmp

// MaxInt32 returns the larger of x or y.
func MaxInt32(x, y int32) int32 {
	if x > y {
		return x
	}
	return y
}

// MinInt32 returns the smaller of x or y.
func MinInt32(x, y int32) int32 {
	if x < y {
		return x
	}
	return y
}
