// Package minio reads objects from MinIO or any S3-compatible store.
//
// Provisioning uses it as one of the schema content sources: a plan entry
// with `object: {bucket: schemas, key: orders/order-created.json}` is
// resolved by calling Get on this client.
//
// Basic usage:
//
//	client, err := minio.NewClient(minio.Config{
//	    Connection: minio.ConnectionConfig{
//	        Endpoint:        "localhost:9000",
//	        AccessKeyID:     "minioadmin",
//	        SecretAccessKey: "minioadmin",
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := client.Get(ctx, "schemas", "orders/order-created.json")
//
// Errors:
//
// MinIO responses are translated into the package errors (ErrObjectNotFound,
// ErrBucketNotFound, ErrAccessDenied, ...) and wrapped with the bucket and key,
// so callers check them with errors.Is.
//
// FX:
//
//	app := fx.New(
//	    fx.Supply(minio.Config{...}),
//	    minio.FXModule,
//	)
package minio
