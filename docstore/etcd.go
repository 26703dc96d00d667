package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/veracomply/sdk/evidence"
)

const (
	// defaultDialTimeout bounds the initial connection to etcd.
	defaultDialTimeout = 5 * time.Second

	// defaultRequestTimeout bounds individual store operations when the
	// caller's context has no deadline of its own.
	defaultRequestTimeout = 5 * time.Second

	// defaultNamespace prefixes all document keys.
	defaultNamespace = "veracomply/documents"
)

// EtcdConfig configures an etcd-backed document store.
type EtcdConfig struct {
	// Endpoints lists etcd endpoints, e.g. ["localhost:2379"].
	Endpoints []string

	// Namespace is the key prefix for document descriptors. Defaults to
	// "veracomply/documents".
	Namespace string

	// DialTimeout bounds connection establishment. Defaults to 5s.
	DialTimeout time.Duration

	// Username and Password enable etcd authentication when set.
	Username string
	Password string
}

// Etcd stores document descriptors as JSON values in etcd, so several
// classification workers can share one descriptor store.
type Etcd struct {
	client    *clientv3.Client
	namespace string
}

// NewEtcd connects to etcd and verifies connectivity before returning.
func NewEtcd(ctx context.Context, cfg EtcdConfig) (*Etcd, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, fmt.Errorf("docstore: at least one etcd endpoint is required")
	}

	dialTimeout := cfg.DialTimeout
	if dialTimeout == 0 {
		dialTimeout = defaultDialTimeout
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	client, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: dialTimeout,
		Username:    cfg.Username,
		Password:    cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("docstore: failed to create etcd client: %w", err)
	}

	checkCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	// A read against any key proves the cluster is reachable.
	if _, err := client.Get(checkCtx, namespace+"/health-check"); err != nil {
		client.Close()
		return nil, fmt.Errorf("docstore: etcd connectivity check failed: %w", err)
	}

	return &Etcd{
		client:    client,
		namespace: namespace,
	}, nil
}

// key builds the etcd key for a document ID.
func (e *Etcd) key(id string) string {
	return fmt.Sprintf("%s/%s", e.namespace, id)
}

// Put stores a document descriptor.
func (e *Etcd) Put(ctx context.Context, doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: failed to marshal document: %w", err)
	}

	opCtx, cancel := e.opContext(ctx)
	defer cancel()

	if _, err := e.client.Put(opCtx, e.key(doc.ID), string(data)); err != nil {
		return fmt.Errorf("docstore: failed to store document %s: %w", doc.ID, err)
	}
	return nil
}

// Get implements Store.
func (e *Etcd) Get(ctx context.Context, id string) (*Document, error) {
	opCtx, cancel := e.opContext(ctx)
	defer cancel()

	resp, err := e.client.Get(opCtx, e.key(id))
	if err != nil {
		return nil, fmt.Errorf("docstore: failed to read document %s: %w", id, err)
	}
	if len(resp.Kvs) == 0 {
		return nil, ErrNotFound
	}

	var doc Document
	if err := json.Unmarshal(resp.Kvs[0].Value, &doc); err != nil {
		return nil, fmt.Errorf("docstore: failed to unmarshal document %s: %w", id, err)
	}
	return &doc, nil
}

// UpdateClassification implements Store. The read and write are not
// transactional; the last classification written wins, which matches the
// pipeline's single-flight-per-document usage.
func (e *Etcd) UpdateClassification(ctx context.Context, id string, result evidence.Result) error {
	doc, err := e.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	res := result
	doc.CurrentTier = res.Tier
	doc.Classification = &res

	return e.Put(ctx, doc)
}

// Ping verifies the etcd connection is alive.
func (e *Etcd) Ping(ctx context.Context) error {
	opCtx, cancel := e.opContext(ctx)
	defer cancel()

	_, err := e.client.Get(opCtx, e.namespace+"/health-check")
	return err
}

// Close releases the etcd client connection.
func (e *Etcd) Close() error {
	return e.client.Close()
}

// opContext applies the default request timeout when the caller's context
// carries no deadline.
func (e *Etcd) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, defaultRequestTimeout)
}
