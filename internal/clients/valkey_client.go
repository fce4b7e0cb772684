package clients

import (
	"context"
	"crypto/tls"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

// ValkeyClient caches serialized analysis payloads so repeat requests for a
// hot video skip the YouTube fetch and the scoring pass entirely.
type ValkeyClient struct {
	Client valkey.Client
	ttl    time.Duration
	mu     sync.Mutex
}

// InitValkey connects using VALKEY_INIT_ADDRESS / VALKEY_PASSWORD /
// VALKEY_TLS. The cache is optional: with no address configured, or when the
// initial ping fails, it returns nil and the service runs uncached.
func InitValkey(ttl time.Duration) *ValkeyClient {
	valkeyOnce.Do(func() {
		if os.Getenv("VALKEY_INIT_ADDRESS") == "" {
			slog.Info("[ValkeyClient] VALKEY_INIT_ADDRESS not set, analysis cache disabled")
			return
		}

		client, err := newValkeyConn()
		if err != nil {
			slog.Warn("[ValkeyClient] Failed to connect, analysis cache disabled",
				slog.String("error", err.Error()))
			return
		}

		if ttl <= 0 {
			ttl = DEFAULT_CACHE_TTL
		}
		valkeyInstance = &ValkeyClient{Client: client, ttl: ttl}
		slog.Info("[ValkeyClient] Successfully connected to valkey",
			slog.Duration("ttl", ttl))
	})
	return valkeyInstance
}

func newValkeyConn() (valkey.Client, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{os.Getenv("VALKEY_INIT_ADDRESS")},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
		client.Close()
		return nil, res.Error()
	}
	return client, nil
}

func (vc *ValkeyClient) recreateClient() {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	vc.Client.Close()

	client, err := newValkeyConn()
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed, keeping stale client",
			slog.String("error", err.Error()))
		return
	}

	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
	vc.Client = client
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

// GetAnalysis returns the cached payload for key and whether it was present.
// Read failures report a miss; the caller recomputes.
func (vc *ValkeyClient) GetAnalysis(ctx context.Context, key string) ([]byte, bool) {
	res := vc.DoWithRetry(ctx, vc.Client.B().Get().Key(key).Build(), 3)
	if err := res.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false
		}
		if isConnectionError(err) {
			vc.recreateClient()
		}
		slog.Warn("[ValkeyClient] Cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}

	payload, err := res.AsBytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// StoreAnalysis caches payload under key with the configured TTL. SET and
// EXPIRE ride the same round trip.
func (vc *ValkeyClient) StoreAnalysis(ctx context.Context, key string, payload []byte) error {
	completed := []valkey.Completed{
		vc.Client.B().Set().Key(key).Value(string(payload)).Build(),
		vc.Client.B().Expire().Key(key).Seconds(int64(vc.ttl / time.Second)).Build(),
	}

	for _, res := range vc.DoMultiWithRetry(ctx, completed, 3) {
		if err := res.Error(); err != nil {
			return err
		}
	}

	slog.Info("[ValkeyClient] Analysis cached",
		slog.String("key", key),
		slog.Int("bytes", len(payload)))
	return nil
}

func (vc *ValkeyClient) DoMultiWithRetry(ctx context.Context, completed []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult

	for i := 0; i < retries; i++ {
		results = vc.Client.DoMulti(ctx, completed...)
		hasErr := false
		for _, r := range results {
			if r.Error() != nil {
				hasErr = true
				slog.Warn("[ValkeyClient] Do Multi failed",
					slog.Int("attempt", i+1),
					slog.String("error", r.Error().Error()))
				if isConnectionError(r.Error()) {
					vc.recreateClient()
				}
				break
			}
		}
		if !hasErr {
			break
		}
		time.Sleep(time.Millisecond * 250)
	}

	return results
}

// DoWithRetry retries transient failures. A valkey nil reply is a miss, not a
// failure, and returns immediately.
func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.Client.Do(ctx, completed)
		err := result.Error()
		if err == nil || valkey.IsValkeyNil(err) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
