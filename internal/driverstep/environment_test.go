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

func testIdentity() Identity {
	return Identity{
		User:     "u",
		UID:      "1000",
		Groups:   []string{"u"},
		GroupIDs: []string{"1000"},
	}
}

func envNames(env []corev1.EnvVar) []string {
	names := make([]string, 0, len(env))
	for _, e := range env {
		names = append(names, e.Name)
	}
	return names
}

func TestDriverEnvironmentOrdering(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkDriverExtraClassPath:                             "/a.jar",
		common.SparkKubernetesDriverEnvPrefix + "FOO":                "1",
		common.SparkKubernetesClusterEnvPrefix + "BAR":               "2",
		common.SparkDriverMemory:                                     "1g",
		common.SparkDriverMainClass:                                  "App",
		common.SparkDriverArgs:                                       "x,y",
		common.SparkKubernetesDriverSecretsPrefix + "spark-ticket-u": "/mnt/secrets/ticket",
		common.SparkKubernetesDriverSecretsPrefix + "spark-ssl-u":    "/mnt/secrets/ssl",
	})

	env, _ := driverEnvironment(conf, testIdentity())

	assert.Equal(t, []string{
		common.EnvSparkClasspath,
		"FOO",
		"BAR",
		common.EnvTicketFileLocation,
		common.EnvSSLLocation,
		common.EnvSparkUser,
		common.EnvSparkUserGroups,
		common.EnvSparkUserID,
		common.EnvSparkUserGroupIDs,
		common.EnvSparkDriverMemory,
		common.EnvSparkDriverClass,
		common.EnvSparkDriverArgs,
		common.EnvSparkDriverBindAddress,
	}, envNames(env))
}

func TestDriverEnvironmentValues(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkDriverMemory:    "2g",
		common.SparkDriverMainClass: "org.apache.spark.examples.SparkPi",
		common.SparkDriverArgs:      "100,200",
	})
	id := Identity{
		User:     "spark",
		UID:      "185",
		Groups:   []string{"spark", "hadoop"},
		GroupIDs: []string{"185", "1001"},
	}

	env, _ := driverEnvironment(conf, id)
	byName := make(map[string]corev1.EnvVar)
	for _, e := range env {
		byName[e.Name] = e
	}

	assert.Equal(t, "spark", byName[common.EnvSparkUser].Value)
	assert.Equal(t, "spark hadoop", byName[common.EnvSparkUserGroups].Value)
	assert.Equal(t, "185", byName[common.EnvSparkUserID].Value)
	assert.Equal(t, "185 1001", byName[common.EnvSparkUserGroupIDs].Value)
	assert.Equal(t, "2g", byName[common.EnvSparkDriverMemory].Value)
	assert.Equal(t, "org.apache.spark.examples.SparkPi", byName[common.EnvSparkDriverClass].Value)
	assert.Equal(t, "100 200", byName[common.EnvSparkDriverArgs].Value)
}

func TestDriverEnvironmentBindAddressIsFieldRef(t *testing.T) {
	env, _ := driverEnvironment(config.NewProperties(), testIdentity())

	bind := env[len(env)-1]
	assert.Equal(t, common.EnvSparkDriverBindAddress, bind.Name)
	assert.Empty(t, bind.Value)
	require.NotNil(t, bind.ValueFrom)
	require.NotNil(t, bind.ValueFrom.FieldRef)
	assert.Equal(t, "status.podIP", bind.ValueFrom.FieldRef.FieldPath)
}

func TestDriverEnvironmentClasspathOnlyIfConfigured(t *testing.T) {
	env, _ := driverEnvironment(config.NewProperties(), testIdentity())
	assert.NotContains(t, envNames(env), common.EnvSparkClasspath)
}

func TestSecretEnvProviders(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkKubernetesDriverSecretsPrefix + "spark-ticket-alice": "/mnt/secrets/ticket",
		common.SparkKubernetesDriverSecretsPrefix + "spark-ssl-alice":    "/mnt/secrets/ssl",
		common.SparkKubernetesDriverSecretsPrefix + "unrelated":          "/mnt/secrets/other",
	})

	env, _ := driverEnvironment(conf, testIdentity())
	byName := make(map[string]corev1.EnvVar)
	for _, e := range env {
		byName[e.Name] = e
	}

	// Ticket values append the configured file name, SSL values pass through.
	assert.Equal(t, "/mnt/secrets/ticket/service.ticket", byName[common.EnvTicketFileLocation].Value)
	assert.Equal(t, "/mnt/secrets/ssl", byName[common.EnvSSLLocation].Value)
}

func TestSecretEnvProviderCustomTicketFile(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkKubernetesTicketFileName:                           "krb.ticket",
		common.SparkKubernetesDriverSecretsPrefix + "spark-ticket-bob": "/mnt/tickets",
	})

	env, _ := driverEnvironment(conf, testIdentity())
	var found bool
	for _, e := range env {
		if e.Name == common.EnvTicketFileLocation {
			assert.Equal(t, "/mnt/tickets/krb.ticket", e.Value)
			found = true
		}
	}
	assert.True(t, found)
}

func TestDriverEnvironmentEnvFrom(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkKubernetesClusterConfigMap: "cluster-props",
		common.SparkKubernetesClusterSecret:    "cluster-creds",
	})

	_, envFrom := driverEnvironment(conf, testIdentity())
	require.Len(t, envFrom, 2)
	require.NotNil(t, envFrom[0].ConfigMapRef)
	assert.Equal(t, "cluster-props", envFrom[0].ConfigMapRef.Name)
	require.NotNil(t, envFrom[1].SecretRef)
	assert.Equal(t, "cluster-creds", envFrom[1].SecretRef.Name)
}

func TestDriverEnvironmentNoEnvFromWhenUnset(t *testing.T) {
	_, envFrom := driverEnvironment(config.NewProperties(), testIdentity())
	assert.Empty(t, envFrom)
}

func TestDriverAnnotationsReservedKey(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkKubernetesDriverAnnotationPrefix + common.AnnotationSparkAppName: "sneaky",
	})

	_, err := driverAnnotations(conf)
	require.Error(t, err)

	var reserved *ReservedKeyError
	require.ErrorAs(t, err, &reserved)
	assert.Equal(t, common.AnnotationSparkAppName, reserved.Key)
	assert.Contains(t, err.Error(), common.AnnotationSparkAppName)
}

func TestDriverAnnotationsMerge(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkAppName: "pi",
		common.SparkKubernetesDriverAnnotationPrefix + "note": "keep",
	})

	annotations, err := driverAnnotations(conf)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"note":                        "keep",
		common.AnnotationSparkAppName: "pi",
	}, annotations)
}

func TestDriverLabelsPassThrough(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkKubernetesDriverLabelPrefix + "spark-app-name": "allowed-on-labels",
	})
	assert.Equal(t, map[string]string{"spark-app-name": "allowed-on-labels"}, driverLabels(conf))
}

func TestDriverNodeSelector(t *testing.T) {
	conf := config.FromMap(map[string]string{
		common.SparkKubernetesNodeSelectorPrefix + "disktype": "ssd",
	})
	assert.Equal(t, map[string]string{"disktype": "ssd"}, driverNodeSelector(conf))
}
