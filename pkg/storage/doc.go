// Package storage provides dataset.Source implementations backed by a local
// directory or an S3-compatible bucket. Both serve files named
// "<dataset>.yaml", e.g. "states.yaml".
//
//	src, err := storage.NewLocal("./data")
//
//	src, err := storage.NewS3(ctx, storage.S3Config{
//		Bucket: "fixtures",
//		Region: "eu-west-1",
//		Prefix: "naijafake/v1",
//	})
//
// A missing dataset is reported as dataset.ErrDatasetNotFound by every
// implementation. S3 failures are classified into the sentinels in this
// package (ErrAccessDenied, ErrBucketNotFound and friends).
package storage
