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

	"github.com/arjunshroff/spark/pkg/common"
	"github.com/arjunshroff/spark/pkg/config"
	"github.com/arjunshroff/spark/pkg/pipeline"
	"github.com/arjunshroff/spark/pkg/util"
)

// BasicDriverStep derives the driver container image, resources, environment,
// labels/annotations and pod scheduling hints from the resolved configuration
// and merges them into the inbound pod and container templates. Fields this
// step does not own are preserved unchanged; the merge is a patch, not a
// replacement.
type BasicDriverStep struct {
	resolver IdentityResolver
}

// BasicDriverStep implements pipeline.ConfigurationStep.
var _ pipeline.ConfigurationStep = (*BasicDriverStep)(nil)

// New creates the driver configuration step. A nil resolver falls back to the
// execution environment.
func New(resolver IdentityResolver) *BasicDriverStep {
	if resolver == nil {
		resolver = OSIdentityResolver{}
	}
	return &BasicDriverStep{resolver: resolver}
}

// Configure implements pipeline.ConfigurationStep. It either returns a
// complete new specification or a terminal error with nothing built.
func (s *BasicDriverStep) Configure(spec pipeline.DriverSpecification) (pipeline.DriverSpecification, error) {
	conf := spec.Conf
	if conf == nil {
		conf = config.NewProperties()
	}

	// All configuration-integrity checks run before any template is touched.
	image, err := config.DriverImage.Get(conf)
	if err != nil {
		return pipeline.DriverSpecification{}, err
	}
	annotations, err := driverAnnotations(conf)
	if err != nil {
		return pipeline.DriverSpecification{}, err
	}
	identity, err := s.resolver.Resolve(conf)
	if err != nil {
		return pipeline.DriverSpecification{}, fmt.Errorf("failed to resolve identity: %w", err)
	}
	if err := validateIdentity(identity); err != nil {
		return pipeline.DriverSpecification{}, err
	}
	resources, err := driverResourceRequirements(conf)
	if err != nil {
		return pipeline.DriverSpecification{}, err
	}

	env, envFrom := driverEnvironment(conf, identity)
	podName := driverPodName(conf)
	appID := applicationID(conf)
	appName, _ := config.AppName.GetOptional(conf)
	pullPolicy, _ := config.ImagePullPolicy.GetOptional(conf)

	out := spec.DeepCopy()

	container := &out.DriverContainer
	container.Name = common.SparkDriverContainerName
	container.Image = image
	container.ImagePullPolicy = corev1.PullPolicy(pullPolicy)
	container.Env = append(container.Env, env...)
	container.EnvFrom = append(container.EnvFrom, envFrom...)
	container.Resources = resources
	container.Args = append(container.Args, common.SparkRoleDriver)

	pod := &out.DriverPod
	pod.Name = podName
	if pod.Labels == nil {
		pod.Labels = make(map[string]string)
	}
	for k, v := range driverLabels(conf) {
		pod.Labels[k] = v
	}
	pod.Labels[common.LabelSparkRole] = common.SparkRoleDriver
	pod.Labels[common.LabelSparkAppSelector] = appID
	if pod.Annotations == nil {
		pod.Annotations = make(map[string]string)
	}
	for k, v := range annotations {
		pod.Annotations[k] = v
	}
	pod.Spec.RestartPolicy = corev1.RestartPolicyNever
	if selector := driverNodeSelector(conf); len(selector) > 0 {
		if pod.Spec.NodeSelector == nil {
			pod.Spec.NodeSelector = make(map[string]string)
		}
		for k, v := range selector {
			pod.Spec.NodeSelector[k] = v
		}
	}
	for _, name := range config.ImagePullSecrets.GetList(conf) {
		pod.Spec.ImagePullSecrets = append(pod.Spec.ImagePullSecrets, corev1.LocalObjectReference{Name: name})
	}

	// Later stages must see the resolved pod name, application ID and
	// executor naming prefix.
	out.Conf.SetIfAbsent(common.SparkKubernetesDriverPodName, podName)
	out.Conf.Set(common.SparkAppID, appID)
	out.Conf.Set(common.SparkKubernetesExecutorPodNamePrefix, executorPodNamePrefix(conf, appName))

	return out, nil
}

// driverPodName returns the configured pod name override, else the
// application name with a -driver suffix.
func driverPodName(conf *config.Properties) string {
	if name, ok := config.DriverPodName.GetOptional(conf); ok && name != "" {
		return name
	}
	appName, _ := config.AppName.GetOptional(conf)
	return fmt.Sprintf("%s-driver", appName)
}

// applicationID returns the configured application ID, else one derived from
// the application and pod names. The derivation is a hash, not a random ID,
// so repeated runs over the same configuration build the same specification.
func applicationID(conf *config.Properties) string {
	if id, ok := config.AppID.GetOptional(conf); ok && id != "" {
		return id
	}
	appName, _ := config.AppName.GetOptional(conf)
	return fmt.Sprintf("spark-%s", util.Hash32Hex(appName, driverPodName(conf)))
}

func executorPodNamePrefix(conf *config.Properties, appName string) string {
	if prefix, ok := config.ExecutorPodNamePrefix.GetOptional(conf); ok && prefix != "" {
		return prefix
	}
	return appName
}
