package awslambda

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

const (
	// WarmupSource identifies warmup events from the scheduler.
	WarmupSource = "warmup"

	// WarmupDelay keeps instances busy long enough to overlap.
	WarmupDelay = 75 * time.Millisecond
)

// WarmupEvent is the scheduled event payload for warmup.
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse is the response returned by warmup operations.
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// IsWarmupEvent checks if the event is a warmup event.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var probe struct {
		Source      *string  `json:"source"`
		Concurrency *float64 `json:"concurrency"`
	}
	if err := json.Unmarshal(event, &probe); err != nil {
		return nil, false
	}
	if probe.Source == nil || *probe.Source != WarmupSource {
		return nil, false
	}

	warmup := &WarmupEvent{Source: WarmupSource}
	if probe.Concurrency != nil && *probe.Concurrency > 0 {
		warmup.Concurrency = int(*probe.Concurrency)
	}
	return warmup, true
}

// Invoker is the part of the Lambda API client used for self-invocation.
type Invoker interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// Warmer answers warmup events, fanning out async copies of itself.
type Warmer struct {
	functionName string
	delay        time.Duration
	newInvoker   func(ctx context.Context) (Invoker, error)
	logger       *slog.Logger

	once    sync.Once
	invoker Invoker
	initErr error
}

// NewWarmer builds a Warmer for the running function, using the default AWS
// config for its Lambda client.
func NewWarmer(logger *slog.Logger) *Warmer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Warmer{
		functionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		delay:        WarmupDelay,
		newInvoker:   defaultInvoker,
		logger:       logger.With("component", "warmup"),
	}
}

func defaultInvoker(ctx context.Context) (Invoker, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return lambdasdk.NewFromConfig(cfg), nil
}

// Handle processes a warmup event and optionally self-invokes to keep
// several instances warm.
func (w *Warmer) Handle(ctx context.Context, warmup *WarmupEvent) (any, error) {
	instancesWarmed := 1 // this instance

	if warmup.Concurrency > 0 {
		if err := w.selfInvoke(ctx, warmup.Concurrency); err != nil {
			w.logger.WarnContext(ctx, "self-invoke failed", "concurrency", warmup.Concurrency, "error", err)
		} else {
			instancesWarmed += warmup.Concurrency
		}
	}

	if w.delay > 0 {
		time.Sleep(w.delay)
	}

	return map[string]any{
		"statusCode": 200,
		"body": WarmupResponse{
			Status:          "warm",
			InstancesWarmed: instancesWarmed,
		},
	}, nil
}

// selfInvoke invokes this function count times asynchronously.
func (w *Warmer) selfInvoke(ctx context.Context, count int) error {
	w.once.Do(func() {
		w.invoker, w.initErr = w.newInvoker(ctx)
	})
	if w.initErr != nil {
		return w.initErr
	}

	// Children get concurrency=0 so they do not fan out again.
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource, Concurrency: 0})
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	var invokeErr error
	var errMu sync.Mutex

	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := w.invoker.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(w.functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				errMu.Lock()
				if invokeErr == nil {
					invokeErr = err
				}
				errMu.Unlock()
			}
		}()
	}

	wg.Wait()
	return invokeErr
}
