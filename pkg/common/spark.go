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

package common

// Spark properties.
const (
	// SparkAppName is the configuration property for application name.
	SparkAppName = "spark.app.name"

	// SparkAppID is the configuration property for the resolved application ID.
	SparkAppID = "spark.app.id"

	SparkDriverCores = "spark.driver.cores"

	SparkDriverMemory = "spark.driver.memory"

	SparkDriverMainClass = "spark.driver.mainClass"

	// SparkDriverArgs is the configuration property carrying the comma-separated
	// application arguments.
	SparkDriverArgs = "spark.driver.args"

	SparkDriverExtraClassPath = "spark.driver.extraClassPath"
)

// Spark on Kubernetes properties.
const (
	// SparkKubernetesDriverPodName is the configuration property for the driver pod name.
	SparkKubernetesDriverPodName = "spark.kubernetes.driver.pod.name"

	// SparkKubernetesDriverContainerImage is the configuration property for the driver container image.
	SparkKubernetesDriverContainerImage = "spark.kubernetes.driver.container.image"

	// SparkKubernetesContainerImagePullPolicy is the configuration property for the container image pull policy.
	SparkKubernetesContainerImagePullPolicy = "spark.kubernetes.container.image.pullPolicy"

	// SparkKubernetesContainerImagePullSecrets is the configuration property for the comma-separated list
	// of image-pull secrets.
	SparkKubernetesContainerImagePullSecrets = "spark.kubernetes.container.image.pullSecrets"

	// SparkKubernetesDriverLimitCores is the configuration property for the hard CPU limit on the driver pod.
	SparkKubernetesDriverLimitCores = "spark.kubernetes.driver.limit.cores"

	// SparkKubernetesDriverMemoryOverhead is the configuration property overriding the computed
	// driver memory overhead.
	SparkKubernetesDriverMemoryOverhead = "spark.kubernetes.driver.memoryOverhead"

	// SparkKubernetesMemoryOverheadFactor is the configuration property for the fraction of driver
	// memory reserved as overhead when no explicit override is set.
	SparkKubernetesMemoryOverheadFactor = "spark.kubernetes.memoryOverheadFactor"

	// SparkKubernetesDriverLabelPrefix is the configuration key prefix for labels on the driver pod.
	SparkKubernetesDriverLabelPrefix = "spark.kubernetes.driver.label."

	// SparkKubernetesDriverAnnotationPrefix is the configuration key prefix for annotations on the driver pod.
	SparkKubernetesDriverAnnotationPrefix = "spark.kubernetes.driver.annotation."

	// SparkKubernetesDriverEnvPrefix is the configuration key prefix for environment variables
	// set into the driver container.
	SparkKubernetesDriverEnvPrefix = "spark.kubernetes.driverEnv."

	// SparkKubernetesClusterEnvPrefix is the configuration key prefix for cluster-wide environment
	// variables set into every container.
	SparkKubernetesClusterEnvPrefix = "spark.kubernetes.clusterEnv."

	// SparkKubernetesNodeSelectorPrefix is the configuration key prefix for the driver pod node selector.
	SparkKubernetesNodeSelectorPrefix = "spark.kubernetes.node.selector."

	// SparkKubernetesDriverSecretsPrefix is the configuration key prefix for secrets mounted into
	// the driver; the value of each key is the secret's mount path.
	SparkKubernetesDriverSecretsPrefix = "spark.kubernetes.driver.secrets."

	// SparkKubernetesTicketSecretPrefix is the configuration property for the name prefix that
	// identifies ticket secrets among the mounted driver secrets.
	SparkKubernetesTicketSecretPrefix = "spark.kubernetes.ticket.secret.prefix"

	// SparkKubernetesTicketFileName is the configuration property for the ticket file name inside
	// a mounted ticket secret.
	SparkKubernetesTicketFileName = "spark.kubernetes.ticket.file.name"

	// SparkKubernetesSSLSecretPrefix is the configuration property for the name prefix that
	// identifies SSL secrets among the mounted driver secrets.
	SparkKubernetesSSLSecretPrefix = "spark.kubernetes.ssl.secret.prefix"

	// SparkKubernetesClusterConfigMap is the configuration property naming a ConfigMap whose
	// entries are injected wholesale into the driver environment.
	SparkKubernetesClusterConfigMap = "spark.kubernetes.cluster.configMap"

	// SparkKubernetesClusterSecret is the configuration property naming a Secret whose entries
	// are injected wholesale into the driver environment.
	SparkKubernetesClusterSecret = "spark.kubernetes.cluster.secret"

	// SparkKubernetesDriverContainerUser is the configuration property overriding the user name
	// the driver container runs as.
	SparkKubernetesDriverContainerUser = "spark.kubernetes.driver.container.user"

	// SparkKubernetesDriverContainerUID is the configuration property overriding the user ID
	// the driver container runs as.
	SparkKubernetesDriverContainerUID = "spark.kubernetes.driver.container.uid"

	// SparkKubernetesExecutorPodNamePrefix is the configuration property for the executor pod
	// name prefix propagated to later stages.
	SparkKubernetesExecutorPodNamePrefix = "spark.kubernetes.executor.podNamePrefix"
)

// Environment variables set into the driver container.
const (
	EnvSparkClasspath = "SPARK_CLASSPATH"

	EnvSparkUser = "SPARK_USER"

	EnvSparkUserGroups = "SPARK_USER_GROUPS"

	EnvSparkUserID = "SPARK_USER_ID"

	EnvSparkUserGroupIDs = "SPARK_USER_GROUPS_IDS"

	EnvSparkDriverMemory = "SPARK_DRIVER_MEMORY"

	EnvSparkDriverClass = "SPARK_DRIVER_CLASS"

	EnvSparkDriverArgs = "SPARK_DRIVER_ARGS"

	// EnvSparkDriverBindAddress is resolved by the kubelet from the pod's own IP
	// at container start, not from a literal value.
	EnvSparkDriverBindAddress = "SPARK_DRIVER_BIND_ADDRESS"

	// EnvTicketFileLocation points at the ticket file inside a mounted ticket secret.
	EnvTicketFileLocation = "SPARK_TICKET_FILE_LOCATION"

	// EnvSSLLocation points at the mount path of an SSL secret.
	EnvSSLLocation = "SPARK_SSL_LOCATION"
)

// Labels and annotations.
const (
	// LabelSparkAppSelector is the app ID label set on the driver pod.
	LabelSparkAppSelector = "spark-app-selector"

	// LabelSparkRole is the driver/executor role label.
	LabelSparkRole = "spark-role"

	// AnnotationSparkAppName is the reserved annotation carrying the application
	// display name. Only the driver configuration step may set it.
	AnnotationSparkAppName = "spark-app-name"
)

const (
	// SparkDriverContainerName is the name of the driver container in the driver pod.
	SparkDriverContainerName = "spark-kubernetes-driver"

	// SparkRoleDriver is the value of the spark-role label for the driver, and the
	// positional argument appended to the driver container command line.
	SparkRoleDriver = "driver"
)

// https://spark.apache.org/docs/latest/configuration.html
const (
	DefaultCPUCores = "1"

	DefaultDriverMemory = "1g"

	DefaultMemoryOverheadFactor = "0.1"

	// MinMemoryOverheadMiB is the floor on computed memory overhead.
	MinMemoryOverheadMiB = 384

	DefaultImagePullPolicy = "IfNotPresent"

	DefaultTicketSecretPrefix = "spark-ticket"

	DefaultTicketFileName = "service.ticket"

	DefaultSSLSecretPrefix = "spark-ssl"
)
