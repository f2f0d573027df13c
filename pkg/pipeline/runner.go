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
	"fmt"

	"k8s.io/klog/v2"
)

// Run feeds the specification through the given steps in order. Later steps
// see the configuration values earlier steps wrote, so steps must not run
// concurrently on the same specification lineage. The first failing step
// aborts the run.
func Run(spec DriverSpecification, steps ...ConfigurationStep) (DriverSpecification, error) {
	for _, step := range steps {
		next, err := step.Configure(spec)
		if err != nil {
			return DriverSpecification{}, fmt.Errorf("configuration step %T failed: %w", step, err)
		}
		klog.V(2).Infof("configuration step %T applied", step)
		spec = next
	}
	return spec, nil
}
