package connection

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/rs/dnscache"
	"golang.org/x/sync/semaphore"
)

// AwsConnection holds the credentials and client settings used to build S3
// store handles.
type AwsConnection struct {
	DefaultRegion         *string `hcl:"default_region,optional"`
	Profile               *string `hcl:"profile,optional"`
	AccessKey             *string `hcl:"access_key,optional"`
	SecretKey             *string `hcl:"secret_key,optional"`
	SessionToken          *string `hcl:"session_token,optional"`
	MaxErrorRetryAttempts *int    `hcl:"max_error_retry_attempts,optional"`
	MinErrorRetryDelay    *int    `hcl:"min_error_retry_delay,optional"`
	EndpointUrl           *string `hcl:"endpoint_url,optional"`
}

func (c *AwsConnection) Validate() error {
	if c.AccessKey != nil && c.SecretKey == nil {
		return fmt.Errorf("access_key set without secret_key")
	}

	if c.AccessKey == nil && c.SecretKey != nil {
		return fmt.Errorf("secret_key set without access_key")
	}

	if c.MinErrorRetryDelay != nil && *c.MinErrorRetryDelay < 1 {
		return fmt.Errorf("min_error_retry_delay must be greater than or equal to 1")
	}

	if c.MaxErrorRetryAttempts != nil && *c.MaxErrorRetryAttempts < 1 {
		return fmt.Errorf("max_error_retry_attempts must be greater than or equal to 1")
	}

	return nil
}

func (c *AwsConnection) Identifier() string {
	return "aws"
}

// GetClientConfiguration builds the aws.Config used to construct S3 clients.
// All clients share a single HTTP client with DNS caching so that handles
// cached for the worker's lifetime do not each carry their own transport.
func (c *AwsConnection) GetClientConfiguration(ctx context.Context) (*aws.Config, error) {
	var configOptions []func(*config.LoadOptions) error

	// profile
	if c.Profile != nil {
		configOptions = append(configOptions, config.WithSharedConfigProfile(aws.ToString(c.Profile)))
	}

	// access keys
	if c.AccessKey != nil && c.SecretKey != nil {
		accessKey := aws.ToString(c.AccessKey)
		secretKey := aws.ToString(c.SecretKey)
		sessionToken := ""
		if c.SessionToken != nil {
			sessionToken = aws.ToString(c.SessionToken)
		}
		provider := credentials.NewStaticCredentialsProvider(accessKey, secretKey, sessionToken)
		configOptions = append(configOptions, config.WithCredentialsProvider(provider))
	}

	// shared http client
	configOptions = append(configOptions, config.WithHTTPClient(sharedHTTPClient))

	// load base config
	cfg, err := config.LoadDefaultConfig(ctx, configOptions...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	// if no region from base config, apply default region
	if cfg.Region == "" {
		defaultRegion := "us-east-1"
		if c.DefaultRegion != nil {
			defaultRegion = *c.DefaultRegion
		}
		configOptions = append(configOptions, config.WithRegion(defaultRegion))
		cfg, err = config.LoadDefaultConfig(ctx, configOptions...)
		if err != nil {
			return nil, fmt.Errorf("error loading AWS config: %w", err)
		}
	}

	// retry handling
	maxRetries := getConfigOrEnvInt(c.MaxErrorRetryAttempts, "AWS_MAX_ATTEMPTS", 9)
	var minRetryDelay = 25 * time.Millisecond
	if c.MinErrorRetryDelay != nil {
		minRetryDelay = time.Duration(*c.MinErrorRetryDelay) * time.Millisecond
	}

	retryer := retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = maxRetries
		o.MaxBackoff = 5 * time.Minute
		o.RateLimiter = NoOpRateLimit{}
		o.Backoff = NewExponentialJitterBackoff(minRetryDelay, maxRetries)
	})
	cfg.Retryer = func() aws.Retryer {
		// UnknownError is the code returned for a 408 from the aws go sdk
		return retry.AddWithErrorCodes(retryer, "UnknownError")
	}

	// custom endpoint
	endpointUrl := getConfigOrEnv(c.EndpointUrl, "AWS_ENDPOINT_URL")
	if endpointUrl != "" {
		customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           endpointUrl,
				SigningRegion: region,
			}, nil
		})
		newCfg, err := config.LoadDefaultConfig(ctx, config.WithEndpointResolverWithOptions(customResolver))
		if err != nil {
			return nil, fmt.Errorf("error loading AWS config with custom endpoint resolver: %w", err)
		}
		newCfg.Retryer = cfg.Retryer
		newCfg.Region = cfg.Region
		cfg = newCfg
	}

	return &cfg, nil
}

func getConfigOrEnv(configValue *string, env string) string {
	if configValue != nil {
		return *configValue
	}

	return os.Getenv(env)
}

func getConfigOrEnvInt(configValue *int, env string, defaultValue int) int {
	if configValue != nil {
		return *configValue
	}

	return readEnvVarToInt(env, defaultValue)
}

// Initialize a single HTTP client shared by all S3 store handles. Store
// handles are cached per container for the worker's lifetime, so sharing
// the transport gives us connection reuse and a single DNS cache across
// them. Go does not cache DNS lookups by default; repeated fetches against
// the same endpoints would otherwise resolve the same hosts over and over.
func initializeHTTPClient() aws.HTTPClient {

	// limit on parallel DNS lookups through the cached resolver
	dnsLookupMaxParallel := readEnvVarToInt("VALIDATE_WORKER_AWS_DNS_LOOKUP_MAX_PARALLEL", 25)

	// The DNS cache will be refreshed at this interval. Set to 0 to disable
	// the refresh, -1 to disable the cache completely (the AWS default).
	dnsCacheRefreshIntervalSecs := readEnvVarToInt("VALIDATE_WORKER_AWS_DNS_CACHE_REFRESH_INTERVAL_SECS", 300)

	// max HTTPS connections per host. Set to 0 to remove the limit (the
	// AWS SDK default).
	httpTransportMaxConnsPerHost := readEnvVarToInt("VALIDATE_WORKER_AWS_HTTP_TRANSPORT_MAX_CONNS_PER_HOST", 5000)

	var resolver = &dnscache.Resolver{}
	if dnsCacheRefreshIntervalSecs > 0 {
		go func() {
			t := time.NewTicker(time.Duration(dnsCacheRefreshIntervalSecs) * time.Second)
			defer t.Stop()
			for range t.C {
				resolver.Refresh(true)
			}
		}()
	}

	client := awshttp.NewBuildableClient()

	if httpTransportMaxConnsPerHost > 0 {
		client = client.WithTransportOptions(func(tr *http.Transport) {
			tr.MaxConnsPerHost = httpTransportMaxConnsPerHost
		})
	}

	if dnsCacheRefreshIntervalSecs >= 0 {

		sem := semaphore.NewWeighted(int64(dnsLookupMaxParallel))

		dialer := client.GetDialer()

		client = client.WithTransportOptions(func(tr *http.Transport) {
			tr.DialContext = func(ctx context.Context, network string, addr string) (conn net.Conn, err error) {

				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return nil, err
				}

				if err := sem.Acquire(ctx, 1); err != nil {
					return nil, err
				}

				// resolve the host, using a cached result if possible
				ips, err := resolver.LookupHost(ctx, host)

				sem.Release(1)

				if err != nil {
					return nil, err
				}

				// try the resolved addresses until one connects
				for _, ip := range ips {
					conn, err = dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
					if err == nil {
						break
					}
				}

				return
			}
		})
	}

	return client
}

var sharedHTTPClient = initializeHTTPClient()

// Helper function for integer based environment variables.
func readEnvVarToInt(name string, defaultVal int) int {
	val := defaultVal
	envValue := os.Getenv(name)
	if envValue != "" {
		i, err := strconv.Atoi(envValue)
		if err == nil {
			val = i
		}
	}
	return val
}

// NoOpRateLimit https://github.com/aws/aws-sdk-go-v2/issues/543
type NoOpRateLimit struct{}

func (NoOpRateLimit) AddTokens(uint) error { return nil }
func (NoOpRateLimit) GetToken(context.Context, uint) (func() error, error) {
	return noOpToken, nil
}
func noOpToken() error { return nil }

// ExponentialJitterBackoff provides backoff delays with jitter based on the
// number of attempts.
type ExponentialJitterBackoff struct {
	minDelay           time.Duration
	maxBackoffAttempts int
}

// NewExponentialJitterBackoff returns an ExponentialJitterBackoff configured
// for the max backoff.
func NewExponentialJitterBackoff(minDelay time.Duration, maxAttempts int) *ExponentialJitterBackoff {
	return &ExponentialJitterBackoff{minDelay, maxAttempts}
}

// BackoffDelay returns the duration to wait before the next attempt should be
// made. Returns an error if unable get a duration.
func (j *ExponentialJitterBackoff) BackoffDelay(attempt int, err error) (time.Duration, error) {
	minDelay := j.minDelay

	// The calculated jitter will be between [0.8, 1.2)
	var jitter = float64(rand.Intn(120-80)+80) / 100

	retryTime := time.Duration(int(float64(int(minDelay.Nanoseconds())*int(math.Pow(3, float64(attempt)))) * jitter))

	// Cap retry time at 5 minutes to avoid too long a wait
	if retryTime > (5 * time.Minute) {
		retryTime = time.Duration(5 * time.Minute)
	}

	slog.Info("BackoffDelay:", "attempt", attempt, "retry_time", retryTime.String(), "error", err)

	return retryTime, nil
}
