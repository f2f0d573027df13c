/*
Copyright 2024 The Spark authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	byteStringSuffixes = map[string]int64{
		"b":  1,
		"kb": 1 << 10,
		"k":  1 << 10,
		"mb": 1 << 20,
		"m":  1 << 20,
		"gb": 1 << 30,
		"g":  1 << 30,
		"tb": 1 << 40,
		"t":  1 << 40,
		"pb": 1 << 50,
		"p":  1 << 50,
		"ki": 1 << 10,
		"mi": 1 << 20,
		"gi": 1 << 30,
		"ti": 1 << 40,
	}

	byteStringPattern = regexp.MustCompile(`^([0-9]+)([a-z]+)?$`)
)

// ByteStringAsMiB parses a JVM-style size string such as "1g" or "512m" and
// returns the amount floored to mebibytes. A bare number is read as mebibytes,
// matching the Spark memory property convention.
func ByteStringAsMiB(byteString string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(byteString))
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		s += "m"
	}
	matches := byteStringPattern.FindStringSubmatch(s)
	if matches != nil {
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, err
		}
		if multiplier, present := byteStringSuffixes[matches[2]]; present {
			if value > math.MaxInt64/multiplier {
				return 0, fmt.Errorf("byte string overflows a 64-bit size: %s", byteString)
			}
			return value * multiplier / (1 << 20), nil
		}
	}
	return 0, fmt.Errorf("unable to parse byte string: %s", byteString)
}
