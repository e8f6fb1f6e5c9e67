package relay

import (
	"context"
	"sync"

	logger "go-scheduler-api/src/infrastructure/logger"

	"go.uber.org/zap"
)

const (
	DefaultWorkers   = 2
	DefaultQueueSize = 100
)

// Dispatcher hands texts to a Relay from a fixed pool of workers so request
// handlers never wait on the outbound call.
type Dispatcher struct {
	relay    Relay
	Logger   *logger.Logger
	queue    chan string
	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

func NewDispatcher(relay Relay, loggerInstance *logger.Logger, workers, queueSize int) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	d := &Dispatcher{
		relay:    relay,
		Logger:   loggerInstance,
		queue:    make(chan string, queueSize),
		shutdown: make(chan struct{}),
	}

	d.Logger.Info("Starting relay workers", zap.Int("workerCount", workers), zap.Int("queueSize", queueSize))
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	return d
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()

	for {
		select {
		case text := <-d.queue:
			d.deliver(text)
		case <-d.shutdown:
			d.Logger.Debug("Shutting down relay worker", zap.Int("workerID", id))
			return
		}
	}
}

func (d *Dispatcher) deliver(text string) {
	if err := d.relay.Relay(context.Background(), text); err != nil {
		d.Logger.Warn("Relay failed", zap.Error(err))
		return
	}
	d.Logger.Debug("Relayed message")
}

// Enqueue never blocks. It returns false when the queue is full or the
// dispatcher has been shut down.
func (d *Dispatcher) Enqueue(text string) bool {
	select {
	case <-d.shutdown:
		return false
	default:
	}

	select {
	case d.queue <- text:
		return true
	default:
		d.Logger.Warn("Relay queue is full, message not relayed")
		return false
	}
}

// Shutdown stops the workers and waits for in-flight deliveries. Texts still
// queued are dropped.
func (d *Dispatcher) Shutdown() {
	d.once.Do(func() {
		close(d.shutdown)
		d.wg.Wait()
		d.Logger.Info("Relay dispatcher stopped")
	})
}
