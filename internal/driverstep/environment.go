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
	"path/filepath"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/arjunshroff/spark/pkg/common"
	"github.com/arjunshroff/spark/pkg/config"
)

// secretEnvProvider derives one environment variable per mounted driver
// secret whose name carries the resolved prefix. The variable value is a
// transform of the secret's mount path.
type secretEnvProvider struct {
	prefix    config.Entry
	envName   string
	transform func(conf *config.Properties, mountPath string) string
}

// Providers run in declaration order; new secret-derived variables are added
// here rather than inside the assembly function.
var secretEnvProviders = []secretEnvProvider{
	{
		prefix:  config.TicketSecretPrefix,
		envName: common.EnvTicketFileLocation,
		transform: func(conf *config.Properties, mountPath string) string {
			fileName, _ := config.TicketFileName.GetOptional(conf)
			return filepath.Join(mountPath, fileName)
		},
	},
	{
		prefix:  config.SSLSecretPrefix,
		envName: common.EnvSSLLocation,
		transform: func(_ *config.Properties, mountPath string) string {
			return mountPath
		},
	},
}

func (p secretEnvProvider) envVars(conf *config.Properties) []corev1.EnvVar {
	prefix, ok := p.prefix.GetOptional(conf)
	if !ok {
		return nil
	}
	var env []corev1.EnvVar
	for _, secret := range conf.WithPrefix(common.SparkKubernetesDriverSecretsPrefix) {
		if strings.HasPrefix(secret.Key, prefix) {
			env = append(env, corev1.EnvVar{Name: p.envName, Value: p.transform(conf, secret.Value)})
		}
	}
	return env
}

// driverEnvironment builds the ordered driver environment variable list and
// the bulk env-from references. The merge is append-only: entries from later
// sources never replace earlier entries of the same name, so duplicates may
// coexist and their resolution is left to the container runtime.
func driverEnvironment(conf *config.Properties, id Identity) ([]corev1.EnvVar, []corev1.EnvFromSource) {
	var env []corev1.EnvVar

	if classpath, ok := config.DriverExtraClassPath.GetOptional(conf); ok {
		env = append(env, corev1.EnvVar{Name: common.EnvSparkClasspath, Value: classpath})
	}

	for _, kv := range conf.WithPrefix(common.SparkKubernetesDriverEnvPrefix) {
		env = append(env, corev1.EnvVar{Name: kv.Key, Value: kv.Value})
	}
	for _, kv := range conf.WithPrefix(common.SparkKubernetesClusterEnvPrefix) {
		env = append(env, corev1.EnvVar{Name: kv.Key, Value: kv.Value})
	}

	for _, provider := range secretEnvProviders {
		env = append(env, provider.envVars(conf)...)
	}

	env = append(env,
		corev1.EnvVar{Name: common.EnvSparkUser, Value: id.User},
		corev1.EnvVar{Name: common.EnvSparkUserGroups, Value: strings.Join(id.Groups, " ")},
		corev1.EnvVar{Name: common.EnvSparkUserID, Value: id.UID},
		corev1.EnvVar{Name: common.EnvSparkUserGroupIDs, Value: strings.Join(id.GroupIDs, " ")},
	)

	memory, _ := config.DriverMemory.GetOptional(conf)
	mainClass, _ := config.DriverMainClass.GetOptional(conf)
	env = append(env,
		corev1.EnvVar{Name: common.EnvSparkDriverMemory, Value: memory},
		corev1.EnvVar{Name: common.EnvSparkDriverClass, Value: mainClass},
		corev1.EnvVar{Name: common.EnvSparkDriverArgs, Value: strings.Join(config.DriverArgs.GetList(conf), " ")},
	)

	env = append(env, corev1.EnvVar{
		Name: common.EnvSparkDriverBindAddress,
		ValueFrom: &corev1.EnvVarSource{
			FieldRef: &corev1.ObjectFieldSelector{FieldPath: "status.podIP"},
		},
	})

	var envFrom []corev1.EnvFromSource
	if name, ok := config.ClusterConfigMap.GetOptional(conf); ok {
		envFrom = append(envFrom, corev1.EnvFromSource{
			ConfigMapRef: &corev1.ConfigMapEnvSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: name},
			},
		})
	}
	if name, ok := config.ClusterSecret.GetOptional(conf); ok {
		envFrom = append(envFrom, corev1.EnvFromSource{
			SecretRef: &corev1.SecretEnvSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: name},
			},
		})
	}

	return env, envFrom
}

// driverAnnotations merges the caller-supplied annotations with the reserved
// application name entry. The reserved key must not be caller-supplied; the
// check runs before any merge so a violation leaves nothing half-built.
func driverAnnotations(conf *config.Properties) (map[string]string, error) {
	annotations := conf.MapWithPrefix(common.SparkKubernetesDriverAnnotationPrefix)
	if _, ok := annotations[common.AnnotationSparkAppName]; ok {
		return nil, &ReservedKeyError{Key: common.AnnotationSparkAppName}
	}
	appName, _ := config.AppName.GetOptional(conf)
	annotations[common.AnnotationSparkAppName] = appName
	return annotations, nil
}

// driverLabels returns the caller-supplied labels unchanged; there is no
// reserved-key protection on labels.
func driverLabels(conf *config.Properties) map[string]string {
	return conf.MapWithPrefix(common.SparkKubernetesDriverLabelPrefix)
}

// driverNodeSelector returns the prefix-extracted node selector pairs with no
// validation; placement policy belongs to the cluster.
func driverNodeSelector(conf *config.Properties) map[string]string {
	return conf.MapWithPrefix(common.SparkKubernetesNodeSelectorPrefix)
}
