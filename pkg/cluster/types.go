package cluster

import (
	"net/http"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
)

// MaxAccountsPerRequest is the getMultipleAccounts key limit.
const MaxAccountsPerRequest = 100

type Config struct {
	Cluster    string
	Endpoint   string
	APIKey     string
	Headers    map[string]string
	Commitment rpc.CommitmentType
	HTTPClient *http.Client
	Logger     zerolog.Logger
}
