package shared

import (
	"fmt"
	"strings"
)

const (
	ClusterMainnetBeta = "mainnet-beta"
	ClusterDevnet      = "devnet"
	ClusterTestnet     = "testnet"
	ClusterLocalnet    = "localnet"
)

var clusterEndpoints = map[string]string{
	ClusterMainnetBeta: "https://api.mainnet-beta.solana.com",
	ClusterDevnet:      "https://api.devnet.solana.com",
	ClusterTestnet:     "https://api.testnet.solana.com",
	ClusterLocalnet:    "http://127.0.0.1:8899",
}

// RPCConfig selects the cluster accounts are loaded from.
type RPCConfig struct {
	Cluster  string
	Endpoint string
	APIKey   string
}

// NormalizeCluster lowercases a cluster name and resolves aliases. An empty
// name means devnet.
func NormalizeCluster(cluster string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(cluster))
	switch normalized {
	case "":
		return ClusterDevnet, nil
	case "mainnet":
		return ClusterMainnetBeta, nil
	case "localhost":
		return ClusterLocalnet, nil
	}

	if _, ok := clusterEndpoints[normalized]; !ok {
		return "", fmt.Errorf("unsupported cluster %q", cluster)
	}
	return normalized, nil
}

// ClusterEndpoint returns the public JSON-RPC endpoint of a cluster.
func ClusterEndpoint(cluster string) (string, error) {
	normalized, err := NormalizeCluster(cluster)
	if err != nil {
		return "", err
	}
	return clusterEndpoints[normalized], nil
}

// RPCConfigFromEnv reads SOLANA_CLUSTER, SOLANA_RPC_URL and SOLANA_RPC_API_KEY.
// Endpoint stays empty unless SOLANA_RPC_URL is set.
func RPCConfigFromEnv() (RPCConfig, error) {
	loadDotEnvIfPresent()

	cluster, err := NormalizeCluster(firstNonEmptyEnv("SOLANA_CLUSTER"))
	if err != nil {
		return RPCConfig{}, err
	}

	return RPCConfig{
		Cluster:  cluster,
		Endpoint: firstNonEmptyEnv("SOLANA_RPC_URL", "RPC_URL"),
		APIKey:   firstNonEmptyEnv("SOLANA_RPC_API_KEY"),
	}, nil
}
