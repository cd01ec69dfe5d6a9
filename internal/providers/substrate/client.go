package substrate

import (
	"fmt"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// EventSubscription is a live subscription to the chain's event storage.
type EventSubscription interface {
	Chan() <-chan types.StorageChangeSet
	Err() <-chan error
	Unsubscribe()
}

// Client defines the subset of substrate node RPC used by the subscriber
//
//go:generate mockgen -source=client.go -destination=../../mocks/substrate.go -package=mocks -mock_names=Client=MockSubstrateClient,EventSubscription=MockEventSubscription
type Client interface {
	// GetMetadataLatest returns the chain metadata at the latest block
	GetMetadataLatest() (*types.Metadata, error)
	// GetHeader returns the header of the block with the given hash
	GetHeader(blockHash types.Hash) (*types.Header, error)
	// GetHeaderLatest returns the header of the latest block
	GetHeaderLatest() (*types.Header, error)
	// GetBlockHash returns the hash of the block at the given height
	GetBlockHash(blockNumber uint64) (types.Hash, error)
	// GetSystemEventsAt returns the raw System.Events storage value at the
	// given block, or nil when the block recorded no events
	GetSystemEventsAt(blockHash types.Hash) ([]byte, error)
	// SubscribeSystemEvents subscribes to raw System.Events storage changes
	SubscribeSystemEvents() (EventSubscription, error)
	// Close closes the underlying connection
	Close()
}

type rpcClient struct {
	api       *gsrpc.SubstrateAPI
	eventsKey types.StorageKey
}

// NewClient dials a substrate node over websocket
func NewClient(url string) (Client, error) {
	api, err := gsrpc.NewSubstrateAPI(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to substrate node: %w", err)
	}
	return &rpcClient{api: api}, nil
}

func (c *rpcClient) GetMetadataLatest() (*types.Metadata, error) {
	return c.api.RPC.State.GetMetadataLatest()
}

func (c *rpcClient) GetHeader(blockHash types.Hash) (*types.Header, error) {
	return c.api.RPC.Chain.GetHeader(blockHash)
}

func (c *rpcClient) GetHeaderLatest() (*types.Header, error) {
	return c.api.RPC.Chain.GetHeaderLatest()
}

func (c *rpcClient) GetBlockHash(blockNumber uint64) (types.Hash, error) {
	return c.api.RPC.Chain.GetBlockHash(blockNumber)
}

func (c *rpcClient) GetSystemEventsAt(blockHash types.Hash) ([]byte, error) {
	key, err := c.systemEventsKey()
	if err != nil {
		return nil, err
	}

	raw, err := c.api.RPC.State.GetStorageRaw(key, blockHash)
	if err != nil {
		return nil, fmt.Errorf("failed to read events storage: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	return []byte(*raw), nil
}

func (c *rpcClient) SubscribeSystemEvents() (EventSubscription, error) {
	key, err := c.systemEventsKey()
	if err != nil {
		return nil, err
	}

	sub, err := c.api.RPC.State.SubscribeStorageRaw([]types.StorageKey{key})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to events storage: %w", err)
	}

	return sub, nil
}

func (c *rpcClient) systemEventsKey() (types.StorageKey, error) {
	if c.eventsKey != nil {
		return c.eventsKey, nil
	}

	meta, err := c.api.RPC.State.GetMetadataLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}

	key, err := types.CreateStorageKey(meta, "System", "Events", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create events storage key: %w", err)
	}

	c.eventsKey = key
	return key, nil
}

func (c *rpcClient) Close() {
	// gsrpc does not expose a close on the api facade; the websocket is torn
	// down when the process exits.
}
