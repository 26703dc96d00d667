// Package docstore defines the document descriptor store and content
// fetcher consumed by the classification pipeline.
//
// The store holds lightweight descriptors (filename, content locator,
// classification state), not document bytes; content lives in whatever blob
// store the deployment uses and is retrieved through ContentFetcher.
//
// Two Store implementations are provided: Memory for tests and embedded
// use, and Etcd for deployments where several workers share one descriptor
// store. Production deployments typically adapt their own persistence layer
// to the Store interface instead.
package docstore
