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
	"strconv"
	"strings"

	"github.com/arjunshroff/spark/pkg/common"
)

// MissingKeyError indicates that a required configuration key has no value.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("configuration key %s is required but not set", e.Key)
}

// Entry describes one configuration key: its default value and whether a
// value must be present. Every key the driver configuration step consumes is
// declared below, so the required/optional/defaulted status of each is
// auditable in one place.
type Entry struct {
	Key      string
	Default  string
	Required bool
}

// Get returns the resolved value of the entry. A required entry with no value
// yields a MissingKeyError; an optional entry with no value yields its default.
func (e Entry) Get(p *Properties) (string, error) {
	if v, ok := p.Get(e.Key); ok {
		return v, nil
	}
	if e.Required {
		return "", &MissingKeyError{Key: e.Key}
	}
	return e.Default, nil
}

// GetOptional returns the value of the entry and whether any value (set or
// defaulted) exists.
func (e Entry) GetOptional(p *Properties) (string, bool) {
	if v, ok := p.Get(e.Key); ok {
		return v, true
	}
	return e.Default, e.Default != ""
}

// GetFloat64 resolves the entry and parses it as a float.
func (e Entry) GetFloat64(p *Properties) (float64, error) {
	v, err := e.Get(p)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s as a float: %w", e.Key, err)
	}
	return parsed, nil
}

// GetList resolves the entry and splits it as a comma-separated list,
// dropping empty elements.
func (e Entry) GetList(p *Properties) []string {
	v, ok := e.GetOptional(p)
	if !ok {
		return nil
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// Configuration schema of the driver configuration step.
var (
	AppName = Entry{Key: common.SparkAppName, Default: "spark"}

	AppID = Entry{Key: common.SparkAppID}

	DriverPodName = Entry{Key: common.SparkKubernetesDriverPodName}

	DriverImage = Entry{Key: common.SparkKubernetesDriverContainerImage, Required: true}

	ImagePullPolicy = Entry{Key: common.SparkKubernetesContainerImagePullPolicy, Default: common.DefaultImagePullPolicy}

	ImagePullSecrets = Entry{Key: common.SparkKubernetesContainerImagePullSecrets}

	DriverCores = Entry{Key: common.SparkDriverCores, Default: common.DefaultCPUCores}

	DriverLimitCores = Entry{Key: common.SparkKubernetesDriverLimitCores}

	DriverMemory = Entry{Key: common.SparkDriverMemory, Default: common.DefaultDriverMemory}

	DriverMemoryOverhead = Entry{Key: common.SparkKubernetesDriverMemoryOverhead}

	MemoryOverheadFactor = Entry{Key: common.SparkKubernetesMemoryOverheadFactor, Default: common.DefaultMemoryOverheadFactor}

	DriverExtraClassPath = Entry{Key: common.SparkDriverExtraClassPath}

	DriverMainClass = Entry{Key: common.SparkDriverMainClass}

	DriverArgs = Entry{Key: common.SparkDriverArgs}

	TicketSecretPrefix = Entry{Key: common.SparkKubernetesTicketSecretPrefix, Default: common.DefaultTicketSecretPrefix}

	TicketFileName = Entry{Key: common.SparkKubernetesTicketFileName, Default: common.DefaultTicketFileName}

	SSLSecretPrefix = Entry{Key: common.SparkKubernetesSSLSecretPrefix, Default: common.DefaultSSLSecretPrefix}

	ClusterConfigMap = Entry{Key: common.SparkKubernetesClusterConfigMap}

	ClusterSecret = Entry{Key: common.SparkKubernetesClusterSecret}

	ContainerUser = Entry{Key: common.SparkKubernetesDriverContainerUser}

	ContainerUID = Entry{Key: common.SparkKubernetesDriverContainerUID}

	ExecutorPodNamePrefix = Entry{Key: common.SparkKubernetesExecutorPodNamePrefix}
)
