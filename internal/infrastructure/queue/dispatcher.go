package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/api/metrics"
	"github.com/storefront/commerce-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes rating-recalculation events to a fixed set of workers
// using consistent hashing on the product id, guaranteeing per-product
// ordering: the aggregate written last always reflects the newest review
// state.
type Dispatcher struct {
	workers []chan string
	service ports.RatingService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.RatingService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan string, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a product id to the worker responsible for it. The call is
// non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(productID string) {
	idx := d.shardIndex(productID)
	d.workers[idx] <- productID
	metrics.RatingQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a product id deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(productID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case productID, ok := <-ch:
			if !ok {
				return
			}
			metrics.RatingQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Recalculate(ctx, productID); err != nil {
				metrics.RatingErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("product_id", productID).
					Int("worker_id", id).
					Msg("rating recalculation failed")
			}
		}
	}
}
