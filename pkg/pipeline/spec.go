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

package pipeline

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/arjunshroff/spark/pkg/config"
)

// DriverSpecification is the value threaded through the driver configuration
// pipeline. It bundles the driver pod template, the driver container template
// and the configuration snapshot accumulated so far.
//
// Each configuration step exclusively owns the instance it receives and
// produces a brand-new instance; no step mutates its input in place.
type DriverSpecification struct {
	DriverPod       corev1.Pod
	DriverContainer corev1.Container
	Conf            *config.Properties
}

// NewDriverSpecification returns a specification with empty templates
// wrapping the given configuration snapshot.
func NewDriverSpecification(conf *config.Properties) DriverSpecification {
	if conf == nil {
		conf = config.NewProperties()
	}
	return DriverSpecification{Conf: conf}
}

// DeepCopy returns a specification whose templates and configuration share no
// memory with the receiver.
func (s DriverSpecification) DeepCopy() DriverSpecification {
	out := DriverSpecification{
		DriverPod:       *s.DriverPod.DeepCopy(),
		DriverContainer: *s.DriverContainer.DeepCopy(),
	}
	if s.Conf != nil {
		out.Conf = s.Conf.Clone()
	} else {
		out.Conf = config.NewProperties()
	}
	return out
}

// ConfigurationStep is one pure transformation in the ordered pipeline that
// builds the driver pod specification. A step either returns a complete new
// specification or a terminal error; it never returns a partially built one.
type ConfigurationStep interface {
	Configure(spec DriverSpecification) (DriverSpecification, error)
}
