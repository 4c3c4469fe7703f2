package cluster

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/ledger"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/shared"
	"github.com/rs/zerolog"
)

type Client struct {
	endpoint   string
	rpc        *rpc.Client
	commitment rpc.CommitmentType
	logger     zerolog.Logger
}

// NewClient creates a new Client. Endpoint wins over Cluster when both are set.
func NewClient(config Config) (*Client, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(config.Endpoint), "/")
	if endpoint == "" {
		resolved, err := shared.ClusterEndpoint(config.Cluster)
		if err != nil {
			return nil, err
		}
		endpoint = resolved
	}

	parsedEndpoint, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid rpc endpoint: %w", err)
	}
	if parsedEndpoint.Scheme != "http" && parsedEndpoint.Scheme != "https" {
		return nil, fmt.Errorf("invalid rpc endpoint: scheme must be http or https")
	}
	if strings.TrimSpace(parsedEndpoint.Host) == "" {
		return nil, fmt.Errorf("invalid rpc endpoint: host is required")
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}
	if apiKey := strings.TrimSpace(config.APIKey); apiKey != "" {
		headers["Authorization"] = fmt.Sprintf("Bearer %s", apiKey)
	}

	opts := &jsonrpc.RPCClientOpts{CustomHeaders: headers}
	if config.HTTPClient != nil {
		opts.HTTPClient = config.HTTPClient
	}

	commitment := config.Commitment
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}

	return &Client{
		endpoint:   endpoint,
		rpc:        rpc.NewWithCustomRPCClient(jsonrpc.NewClientWithOpts(endpoint, opts)),
		commitment: commitment,
		logger:     config.Logger.With().Str("component", "cluster").Str("endpoint", endpoint).Logger(),
	}, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// GetAccounts fetches keys in order. A missing account is returned as nil.
func (c *Client) GetAccounts(ctx context.Context, keys []solana.PublicKey) ([]*ledger.Account, error) {
	result := make([]*ledger.Account, 0, len(keys))

	for start := 0; start < len(keys); start += MaxAccountsPerRequest {
		end := start + MaxAccountsPerRequest
		if end > len(keys) {
			end = len(keys)
		}
		batch := keys[start:end]

		response, err := c.rpc.GetMultipleAccountsWithOpts(ctx, batch, &rpc.GetMultipleAccountsOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: c.commitment,
		})
		if err != nil {
			return nil, fmt.Errorf("getMultipleAccounts failed: %w", err)
		}
		if response == nil || len(response.Value) != len(batch) {
			return nil, fmt.Errorf("getMultipleAccounts returned %d accounts for %d keys", responseLength(response), len(batch))
		}

		for _, account := range response.Value {
			result = append(result, toLedgerAccount(account))
		}
		c.logger.Debug().Int("accounts", len(batch)).Msg("fetched accounts")
	}

	return result, nil
}

// LoadInstructionAccounts fetches every account an instruction references and
// returns them with the signer and writable flags of the instruction's metas.
// A key listed more than once gets one AccountInfo with the union of its flags.
func (c *Client) LoadInstructionAccounts(ctx context.Context, instruction solana.Instruction) ([]*ledger.AccountInfo, error) {
	keys := make([]solana.PublicKey, 0)
	flags := map[solana.PublicKey]*solana.AccountMeta{}
	for _, meta := range instruction.Accounts() {
		existing, ok := flags[meta.PublicKey]
		if !ok {
			keys = append(keys, meta.PublicKey)
			flags[meta.PublicKey] = &solana.AccountMeta{
				PublicKey:  meta.PublicKey,
				IsSigner:   meta.IsSigner,
				IsWritable: meta.IsWritable,
			}
			continue
		}
		existing.IsSigner = existing.IsSigner || meta.IsSigner
		existing.IsWritable = existing.IsWritable || meta.IsWritable
	}

	accounts, err := c.GetAccounts(ctx, keys)
	if err != nil {
		return nil, err
	}

	infos := make([]*ledger.AccountInfo, 0, len(keys))
	for index, key := range keys {
		meta := flags[key]
		infos = append(infos, ledger.NewAccountInfo(key, meta.IsSigner, meta.IsWritable, accounts[index]))
	}
	return infos, nil
}

func toLedgerAccount(account *rpc.Account) *ledger.Account {
	if account == nil {
		return nil
	}

	var data []byte
	if account.Data != nil {
		data = account.Data.GetBinary()
	}
	return &ledger.Account{
		Owner:      account.Owner,
		Lamports:   account.Lamports,
		Data:       data,
		Executable: account.Executable,
	}
}

func responseLength(response *rpc.GetMultipleAccountsResult) int {
	if response == nil {
		return 0
	}
	return len(response.Value)
}
