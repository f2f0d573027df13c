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
	"maps"
	"sort"
	"strings"
)

// Properties is a resolved Spark configuration snapshot threaded through the
// submission pipeline. A stage that needs to carry values forward clones the
// snapshot and writes into the clone; the instance a stage receives is never
// mutated through it.
type Properties struct {
	data map[string]string
}

// NewProperties returns an empty configuration snapshot.
func NewProperties() *Properties {
	return &Properties{data: make(map[string]string)}
}

// FromMap returns a snapshot holding a copy of the given properties.
func FromMap(m map[string]string) *Properties {
	p := NewProperties()
	maps.Copy(p.data, m)
	return p
}

// Clone returns an independent copy of the snapshot.
func (p *Properties) Clone() *Properties {
	return FromMap(p.data)
}

// Get returns the value of the given key and whether it is set.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.data[key]
	return v, ok
}

// Set sets the given key to the given value.
func (p *Properties) Set(key, value string) {
	p.data[key] = value
}

// SetIfAbsent sets the given key only if it has no value yet.
func (p *Properties) SetIfAbsent(key, value string) {
	if _, ok := p.data[key]; !ok {
		p.data[key] = value
	}
}

// Len returns the number of properties set.
func (p *Properties) Len() int {
	return len(p.data)
}

// KeyValue is a single prefix-stripped configuration pair.
type KeyValue struct {
	Key   string
	Value string
}

// WithPrefix returns all properties under the given key prefix, with the
// prefix stripped. Pairs are sorted by key so that every scan of the same
// snapshot yields the same order; the built pod specification must be
// byte-identical across runs and map iteration order is not.
func (p *Properties) WithPrefix(prefix string) []KeyValue {
	var pairs []KeyValue
	for k, v := range p.data {
		if strings.HasPrefix(k, prefix) {
			pairs = append(pairs, KeyValue{Key: strings.TrimPrefix(k, prefix), Value: v})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

// MapWithPrefix returns the properties under the given key prefix as a map,
// with the prefix stripped.
func (p *Properties) MapWithPrefix(prefix string) map[string]string {
	m := make(map[string]string)
	for k, v := range p.data {
		if strings.HasPrefix(k, prefix) {
			m[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return m
}
