/*
 * MIT License
 *
 * Copyright (c) 2022-2026 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"os"

	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/gonode/config"
	"github.com/tochemey/gonode/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(node *Node)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(node *Node)

// Apply applies the Node's option
func (f OptionFunc) Apply(node *Node) {
	f(node)
}

// WithLogger sets the node logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(node *Node) {
		node.logger = logger
	})
}

// WithName sets the node name
func WithName(name string) Option {
	return OptionFunc(func(node *Node) {
		node.name = name
	})
}

// WithSchedulers sets the number of schedulers.
// Zero means one scheduler per CPU; a negative count fails the node startup.
func WithSchedulers(count int) Option {
	return OptionFunc(func(node *Node) {
		node.schedulersCount = count
	})
}

// WithTracer installs a tracer at startup
func WithTracer(tracer Tracer) Option {
	return OptionFunc(func(node *Node) {
		if tracer != nil {
			node.tracer.Store(&tracerSlot{tracer: tracer})
		}
	})
}

// WithMeterProvider enables the node metrics with the given OpenTelemetry provider
func WithMeterProvider(provider metric.MeterProvider) Option {
	return OptionFunc(func(node *Node) {
		node.meterProvider = provider
		node.metricEnabled = true
	})
}

// WithConfig applies a loaded configuration: name, schedulers, log level
// and metrics. Options given after it take precedence.
func WithConfig(cfg *config.Config) Option {
	return OptionFunc(func(node *Node) {
		if cfg == nil {
			return
		}
		node.name = cfg.Name
		node.schedulersCount = cfg.Schedulers
		node.logger = log.NewZap(cfg.Level(), os.Stdout)
		if cfg.Metrics {
			node.metricEnabled = true
		}
	})
}
