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

package util

import (
	"fmt"
	"hash/fnv"
)

// Hash32Hex returns the hex-encoded 32-bit FNV-1 hash of the concatenation
// of the given parts.
func Hash32Hex(parts ...string) string {
	h := fnv.New32()
	for _, part := range parts {
		h.Write([]byte(part))
	}
	return fmt.Sprintf("%08x", h.Sum32())
}
