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

package driverstep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"

	"github.com/arjunshroff/spark/pkg/common"
	"github.com/arjunshroff/spark/pkg/config"
)

func TestMemoryOverheadFormula(t *testing.T) {
	tests := []struct {
		name      string
		conf      map[string]string
		memoryMiB int64
		expected  int64
	}{
		{
			name:      "factor below minimum",
			conf:      map[string]string{},
			memoryMiB: 1024,
			expected:  384,
		},
		{
			name:      "factor above minimum",
			conf:      map[string]string{},
			memoryMiB: 8192,
			expected:  819,
		},
		{
			name:      "custom factor",
			conf:      map[string]string{common.SparkKubernetesMemoryOverheadFactor: "0.5"},
			memoryMiB: 1024,
			expected:  512,
		},
		{
			name:      "explicit override bypasses the formula",
			conf:      map[string]string{common.SparkKubernetesDriverMemoryOverhead: "200"},
			memoryMiB: 1024,
			expected:  200,
		},
		{
			name:      "override with unit suffix",
			conf:      map[string]string{common.SparkKubernetesDriverMemoryOverhead: "1g"},
			memoryMiB: 1024,
			expected:  1024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := memoryOverheadMiB(config.FromMap(tt.conf), tt.memoryMiB)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDriverResourceRequirements(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkDriverMemory: "512m",
	})

	requirements, err := driverResourceRequirements(conf)
	require.NoError(t, err)

	memoryRequest := requirements.Requests[corev1.ResourceMemory]
	assert.Equal(t, "512Mi", memoryRequest.String())
	memoryLimit := requirements.Limits[corev1.ResourceMemory]
	assert.Equal(t, "896Mi", memoryLimit.String())
	cpuRequest := requirements.Requests[corev1.ResourceCPU]
	assert.Equal(t, "1", cpuRequest.String())

	_, hasCPULimit := requirements.Limits[corev1.ResourceCPU]
	assert.False(t, hasCPULimit, "no CPU limit is imposed unless configured")
}

func TestDriverResourceRequirementsWithCPULimit(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkDriverCores:                "0.5",
		common.SparkKubernetesDriverLimitCores: "2",
	})

	requirements, err := driverResourceRequirements(conf)
	require.NoError(t, err)

	// The configured core string round-trips unmodified.
	cpuRequest := requirements.Requests[corev1.ResourceCPU]
	assert.Equal(t, "0.5", cpuRequest.String())
	cpuLimit := requirements.Limits[corev1.ResourceCPU]
	assert.Equal(t, "2", cpuLimit.String())
}

func TestDriverResourceRequirementsLimitIncludesOverride(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkDriverMemory:                   "1g",
		common.SparkKubernetesDriverMemoryOverhead: "200",
	})

	requirements, err := driverResourceRequirements(conf)
	require.NoError(t, err)
	memoryLimit := requirements.Limits[corev1.ResourceMemory]
	assert.Equal(t, "1224Mi", memoryLimit.String())
}

func TestDriverResourceRequirementsInvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		conf map[string]string
	}{
		{name: "bad memory", conf: map[string]string{common.SparkDriverMemory: "lots"}},
		{name: "bad cores", conf: map[string]string{common.SparkDriverCores: "four"}},
		{name: "bad core limit", conf: map[string]string{common.SparkKubernetesDriverLimitCores: "a lot"}},
		{name: "bad overhead factor", conf: map[string]string{common.SparkKubernetesMemoryOverheadFactor: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := driverResourceRequirements(config.FromMap(tt.conf))
			assert.Error(t, err)
		})
	}
}
