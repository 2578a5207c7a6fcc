// Package s3 provides an AWS S3-backed tablestore.Store.
//
// Hash function records are small and immutable once written, which makes
// object storage a natural home for tables shared by a fleet: one process
// seeds and saves a table, every other process loads the same bytes and
// hashes identically.
//
// Usage:
//
//	store, err := s3.New(ctx, "my-bucket", func(o *s3.Options) {
//		o.Prefix = "tables/"
//	})
//
// or with a preconfigured client:
//
//	store := s3.NewStore(client, "my-bucket", "tables/")
package s3
