// Package outputfs provisions the filesystem a build writes its output to, and
// that a devfs.Resolver later reads from.
//
// Use [Setup] to validate a caller-supplied filesystem (or create an in-memory
// one) and hand it to the build's compilers, or [Lookup] to open one by URL:
//
//	mem:///                                   in-memory (go-billy memfs)
//	file:///path/to/dist                      local disk, rooted at the path
//	s3://bucket?region=us-east-1              Amazon S3 (Go CDK)
//	gs://bucket                               Google Cloud Storage (Go CDK)
//	azblob://container                        Azure Blob Storage (Go CDK)
//	blob+mem://                               in-memory Go CDK bucket
//	blob+file:///path/to/dir                  local directory as a Go CDK bucket
//
// For s3 URLs, the region, endpoint and anonymous access can also be set with
// the AWS_REGION, AWS_S3_ENDPOINT and AWS_ANON environment variables. Use
// [OpenS3Bucket] when the S3 client itself needs configuring.
//
// Additional schemes can be registered on a [Mux].
package outputfs
