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

package metric

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// NodeMetric groups the OpenTelemetry instruments describing a node.
//
// Instruments:
//   - node.processes.spawned         (Int64ObservableCounter)
//   - node.processes.count           (Int64ObservableGauge)
//   - node.scheduler.runqueue.length (Int64ObservableGauge, attribute scheduler.id)
//   - node.deadletters.count         (Int64ObservableCounter)
//   - node.faults.count              (Int64ObservableCounter)
//   - node.messages.sent             (Int64ObservableCounter)
type NodeMetric struct {
	spawnedCount     metric.Int64ObservableCounter
	processesCount   metric.Int64ObservableGauge
	runQueueLength   metric.Int64ObservableGauge
	deadlettersCount metric.Int64ObservableCounter
	faultsCount      metric.Int64ObservableCounter
	messagesCount    metric.Int64ObservableCounter
}

// NewNodeMetric creates the node instruments with the given Meter.
// It fails when any instrument cannot be created.
func NewNodeMetric(meter metric.Meter) (*NodeMetric, error) {
	var instruments NodeMetric
	var err error

	if instruments.spawnedCount, err = meter.Int64ObservableCounter(
		"node.processes.spawned",
		metric.WithDescription("Total number of processes spawned on the node"),
	); err != nil {
		return nil, fmt.Errorf("failed to create spawnedCount instrument, %w", err)
	}

	if instruments.processesCount, err = meter.Int64ObservableGauge(
		"node.processes.count",
		metric.WithDescription("Number of live processes on the node"),
	); err != nil {
		return nil, fmt.Errorf("failed to create processesCount instrument, %w", err)
	}

	if instruments.runQueueLength, err = meter.Int64ObservableGauge(
		"node.scheduler.runqueue.length",
		metric.WithDescription("Number of processes assigned to a scheduler"),
	); err != nil {
		return nil, fmt.Errorf("failed to create runQueueLength instrument, %w", err)
	}

	if instruments.deadlettersCount, err = meter.Int64ObservableCounter(
		"node.deadletters.count",
		metric.WithDescription("Total number of messages dropped because the target is gone"),
	); err != nil {
		return nil, fmt.Errorf("failed to create deadlettersCount instrument, %w", err)
	}

	if instruments.faultsCount, err = meter.Int64ObservableCounter(
		"node.faults.count",
		metric.WithDescription("Total number of process turns that ended with a fault"),
	); err != nil {
		return nil, fmt.Errorf("failed to create faultsCount instrument, %w", err)
	}

	if instruments.messagesCount, err = meter.Int64ObservableCounter(
		"node.messages.sent",
		metric.WithDescription("Total number of messages accepted for delivery"),
	); err != nil {
		return nil, fmt.Errorf("failed to create messagesCount instrument, %w", err)
	}

	return &instruments, nil
}

// SpawnedCount returns the counter of spawned processes
func (x *NodeMetric) SpawnedCount() metric.Int64ObservableCounter {
	return x.spawnedCount
}

// ProcessesCount returns the gauge of live processes
func (x *NodeMetric) ProcessesCount() metric.Int64ObservableGauge {
	return x.processesCount
}

// RunQueueLength returns the per scheduler run-queue gauge
func (x *NodeMetric) RunQueueLength() metric.Int64ObservableGauge {
	return x.runQueueLength
}

// DeadlettersCount returns the counter of dropped messages
func (x *NodeMetric) DeadlettersCount() metric.Int64ObservableCounter {
	return x.deadlettersCount
}

// FaultsCount returns the counter of faulted turns
func (x *NodeMetric) FaultsCount() metric.Int64ObservableCounter {
	return x.faultsCount
}

// MessagesCount returns the counter of sent messages
func (x *NodeMetric) MessagesCount() metric.Int64ObservableCounter {
	return x.messagesCount
}

// Instruments returns every instrument so that they can be bound to a single callback
func (x *NodeMetric) Instruments() []metric.Observable {
	return []metric.Observable{
		x.spawnedCount,
		x.processesCount,
		x.runQueueLength,
		x.deadlettersCount,
		x.faultsCount,
		x.messagesCount,
	}
}
