package minio

// WithVersionID reads a specific version of an object in a versioned bucket.
//
// Example:
//
//	doc, err := client.Get(ctx, "schemas", "orders/order-created.json", minio.WithVersionID(v))
func WithVersionID(versionID string) GetOption {
	return func(opts *GetOptions) {
		opts.VersionID = versionID
	}
}
