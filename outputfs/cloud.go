package outputfs

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hairyhenderson/go-devfs/internal/env"
	"gocloud.dev/blob"
	"gocloud.dev/blob/gcsblob"
	"gocloud.dev/blob/s3blob"
	"gocloud.dev/gcp"
)

// envFS is where *_FILE environment variables are resolved from
//
//nolint:gochecknoglobals
var envFS fs.FS = os.DirFS("/")

// OpenS3Bucket opens the named S3 bucket with a client built from the default
// AWS configuration (environment, shared config files, IMDS). The optFns can
// adjust the client, e.g. to set a custom endpoint for S3-compatible stores.
func OpenS3Bucket(ctx context.Context, bucketName string, optFns ...func(*s3.Options)) (*BucketFS, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, optFns...)

	bucket, err := s3blob.OpenBucketV2(ctx, client, bucketName, nil)
	if err != nil {
		return nil, fmt.Errorf("open bucket %q: %w", bucketName, err)
	}

	fsys := NewBucketFS(ctx, bucket)
	fsys.url = (&url.URL{Scheme: schemeS3, Host: bucketName}).String()

	return fsys, nil
}

// openGCSBucket opens a gs: URL, using an unauthenticated client when
// GOOGLE_ANON is "true"
func openGCSBucket(ctx context.Context, u *url.URL, transport http.RoundTripper) (*blob.Bucket, error) {
	if env.GetenvFS(envFS, "GOOGLE_ANON") != "true" {
		return blob.OpenBucket(ctx, u.String())
	}

	opener := &gcsblob.URLOpener{Client: gcp.NewAnonymousHTTPClient(transport)}

	return opener.OpenBucketURL(ctx, u)
}

// cleanGSURL removes query parameters the Go CDK can't parse
func cleanGSURL(u url.URL) url.URL {
	q := u.Query()
	for param := range q {
		switch param {
		case "access_id", "private_key_path":
		default:
			q.Del(param)
		}
	}

	u.RawQuery = q.Encode()

	return u
}

// cleanS3URL removes query parameters the Go CDK can't parse, translates the
// older AWS SDK v1 parameter names, and fills in settings from the standard
// AWS environment variables
func cleanS3URL(u url.URL) url.URL {
	q := u.Query()
	translateV1Params(q)

	for param := range q {
		switch param {
		case "accelerate",
			"anonymous",
			"disable_https",
			"dualstack",
			"endpoint",
			"fips",
			"hostname_immutable",
			"profile",
			"rate_limiter_capacity",
			"region",
			"use_path_style",
			"kmskeyid",
			"ssetype":
		default:
			q.Del(param)
		}
	}

	setS3ParamsFromEnv(q)
	ensureValidEndpointURL(q)

	u.RawQuery = q.Encode()

	return u
}

func translateV1Params(q url.Values) {
	for param := range q {
		switch param {
		case "disableSSL":
			q.Set("disable_https", q.Get(param))
			q.Del(param)
		case "s3ForcePathStyle":
			q.Set("use_path_style", q.Get(param))
			q.Del(param)
		}
	}
}

// an endpoint must be a URL with a scheme - infer it from disable_https
func ensureValidEndpointURL(q url.Values) {
	endpoint := q.Get("endpoint")
	if endpoint == "" {
		return
	}

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		return
	}

	if q.Get("disable_https") == "true" {
		q.Set("endpoint", "http://"+endpoint)
	} else {
		q.Set("endpoint", "https://"+endpoint)
	}
}

func setS3ParamsFromEnv(q url.Values) {
	if q.Get("endpoint") == "" {
		if endpoint := env.GetenvFS(envFS, "AWS_S3_ENDPOINT"); endpoint != "" {
			q.Set("endpoint", endpoint)
		}
	}

	if q.Get("region") == "" {
		region := env.GetenvFS(envFS, "AWS_REGION", env.GetenvFS(envFS, "AWS_DEFAULT_REGION"))
		if region != "" {
			q.Set("region", region)
		}
	}

	if q.Get("anonymous") == "" {
		if anon := env.GetenvFS(envFS, "AWS_ANON"); anon != "" {
			q.Set("anonymous", anon)
		}
	}
}
