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
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/arjunshroff/spark/pkg/common"
	"github.com/arjunshroff/spark/pkg/config"
)

// driverMemoryMiB returns the configured driver memory floored to mebibytes.
func driverMemoryMiB(conf *config.Properties) (int64, error) {
	memory, err := config.DriverMemory.Get(conf)
	if err != nil {
		return 0, err
	}
	miB, err := config.ByteStringAsMiB(memory)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", common.SparkDriverMemory, err)
	}
	return miB, nil
}

// memoryOverheadMiB computes the driver memory overhead in mebibytes. An
// explicit override bypasses the formula entirely; otherwise the overhead is
// max(floor(factor * memory), 384Mi).
func memoryOverheadMiB(conf *config.Properties, memoryMiB int64) (int64, error) {
	if override, ok := config.DriverMemoryOverhead.GetOptional(conf); ok {
		miB, err := config.ByteStringAsMiB(override)
		if err != nil {
			return 0, fmt.Errorf("failed to parse %s: %w", common.SparkKubernetesDriverMemoryOverhead, err)
		}
		return miB, nil
	}

	factor, err := config.MemoryOverheadFactor.GetFloat64(conf)
	if err != nil {
		return 0, err
	}
	overhead := int64(factor * float64(memoryMiB))
	if overhead < common.MinMemoryOverheadMiB {
		overhead = common.MinMemoryOverheadMiB
	}
	return overhead, nil
}

// cpuQuantity eagerly validates a configured core count as a legal quantity.
// The original string is preserved on the round trip, fractional values
// included.
func cpuQuantity(cores string, key string) (resource.Quantity, error) {
	quantity, err := resource.ParseQuantity(cores)
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("failed to parse %s as a quantity: %w", key, err)
	}
	return quantity, nil
}

// driverResourceRequirements computes the driver container resource requests
// and limits from the resolved configuration. The memory request is the
// configured driver memory; the memory limit adds the overhead. A CPU limit
// is imposed only when one is configured.
func driverResourceRequirements(conf *config.Properties) (corev1.ResourceRequirements, error) {
	memoryMiB, err := driverMemoryMiB(conf)
	if err != nil {
		return corev1.ResourceRequirements{}, err
	}
	overheadMiB, err := memoryOverheadMiB(conf, memoryMiB)
	if err != nil {
		return corev1.ResourceRequirements{}, err
	}

	cores, err := config.DriverCores.Get(conf)
	if err != nil {
		return corev1.ResourceRequirements{}, err
	}
	cpu, err := cpuQuantity(cores, common.SparkDriverCores)
	if err != nil {
		return corev1.ResourceRequirements{}, err
	}

	requirements := corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    cpu,
			corev1.ResourceMemory: resource.MustParse(fmt.Sprintf("%dMi", memoryMiB)),
		},
		Limits: corev1.ResourceList{
			corev1.ResourceMemory: resource.MustParse(fmt.Sprintf("%dMi", memoryMiB+overheadMiB)),
		},
	}

	if limitCores, ok := config.DriverLimitCores.GetOptional(conf); ok {
		cpuLimit, err := cpuQuantity(limitCores, common.SparkKubernetesDriverLimitCores)
		if err != nil {
			return corev1.ResourceRequirements{}, err
		}
		requirements.Limits[corev1.ResourceCPU] = cpuLimit
	}

	return requirements, nil
}
