package consumers

import (
	"context"
	"sync/atomic"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// ConsumerWrapper attaches health signals to a consumer loop before it is
// registered for a topic. The reply and results consumers use it so a down
// reply service or search cluster pauses or degrades consumption instead of
// failing every message.
type ConsumerWrapper struct {
	fn     func(ctx context.Context, consumer *kafka.Consumer, health ...*atomic.Bool)
	health []*atomic.Bool
}

func WrapConsumer(fn func(ctx context.Context, consumer *kafka.Consumer, health ...*atomic.Bool), health ...*atomic.Bool) ConsumerWrapper {
	return ConsumerWrapper{
		fn:     fn,
		health: health,
	}
}

func (cw ConsumerWrapper) WithHealthCheck(health *atomic.Bool) ConsumerWrapper {
	cw.health = append(cw.health, health)
	return cw
}

// Handler adapts the wrapped loop to the registry's handler signature.
func (cw ConsumerWrapper) Handler() func(ctx context.Context, consumer *kafka.Consumer) {
	return func(ctx context.Context, consumer *kafka.Consumer) {
		cw.fn(ctx, consumer, cw.health...)
	}
}
