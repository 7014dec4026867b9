package automaton

import (
	"strconv"
	"sync"
	"time"
)

// ConversionObserver is notified by ObservableConverter around the
// conversions it wraps (SingleSymbolForm, DeterministicForm,
// CompleteDeterministicForm, MinimalCompleteDeterministicForm, and any
// ConversionFunc passed to Apply); FromRegex and RegexOf are not
// observed. It mirrors the
// teacher's Observer interface (fsm/interfaces.go) but keyed on
// conversion name instead of (state, symbol, state) triples, since this
// package's automata are value-semantic rather than stepped one symbol
// at a time.
type ConversionObserver interface {
	OnConversionStart(name string, inputSize int)
	OnConversionComplete(name string, inputSize, outputSize int, d time.Duration)
}

// LoggingObserver reports conversions through an injected sink, mirroring
// the teacher's fsm.LoggingObserver.
type LoggingObserver struct {
	logFunc func(string)
}

// NewLoggingObserver builds a LoggingObserver writing through logFunc.
func NewLoggingObserver(logFunc func(string)) *LoggingObserver {
	return &LoggingObserver{logFunc: logFunc}
}

func (o *LoggingObserver) OnConversionStart(name string, inputSize int) {
	if o.logFunc != nil {
		o.logFunc("starting " + name + " on an automaton of size " + strconv.Itoa(inputSize))
	}
}

func (o *LoggingObserver) OnConversionComplete(name string, inputSize, outputSize int, d time.Duration) {
	if o.logFunc != nil {
		o.logFunc(name + " finished: " + strconv.Itoa(inputSize) + " -> " + strconv.Itoa(outputSize) + " states in " + d.String())
	}
}

// MetricsObserver counts conversions and accumulates their wall time,
// mirroring the teacher's fsm.MetricsObserver. All methods are safe for
// concurrent use.
type MetricsObserver struct {
	mu               sync.RWMutex
	conversionCount  map[string]int
	totalDuration    map[string]time.Duration
}

// NewMetricsObserver builds an empty MetricsObserver.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		conversionCount: make(map[string]int),
		totalDuration:   make(map[string]time.Duration),
	}
}

func (o *MetricsObserver) OnConversionStart(name string, inputSize int) {}

func (o *MetricsObserver) OnConversionComplete(name string, inputSize, outputSize int, d time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.conversionCount[name]++
	o.totalDuration[name] += d
}

// Count returns how many times name has completed.
func (o *MetricsObserver) Count(name string) int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.conversionCount[name]
}

// AverageDuration returns the mean completion time for name.
func (o *MetricsObserver) AverageDuration(name string) time.Duration {
	o.mu.RLock()
	defer o.mu.RUnlock()
	n := o.conversionCount[name]
	if n == 0 {
		return 0
	}
	return o.totalDuration[name] / time.Duration(n)
}

// CompositeObserver fans out to every registered ConversionObserver,
// mirroring the teacher's fsm.CompositeObserver.
type CompositeObserver struct {
	mu        sync.RWMutex
	observers []ConversionObserver
}

// NewCompositeObserver builds a CompositeObserver over the given observers.
func NewCompositeObserver(observers ...ConversionObserver) *CompositeObserver {
	return &CompositeObserver{observers: observers}
}

// AddObserver registers an additional observer.
func (c *CompositeObserver) AddObserver(o ConversionObserver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

func (c *CompositeObserver) OnConversionStart(name string, inputSize int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, o := range c.observers {
		o.OnConversionStart(name, inputSize)
	}
}

func (c *CompositeObserver) OnConversionComplete(name string, inputSize, outputSize int, d time.Duration) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, o := range c.observers {
		o.OnConversionComplete(name, inputSize, outputSize, d)
	}
}

// ObservableConverter wraps an Automaton and notifies an observer around
// each conversion, mirroring the teacher's fsm.ObservableAutomaton, but
// wrapping pure conversions rather than a single mutable current-state
// machine.
type ObservableConverter struct {
	automaton *Automaton
	observer  ConversionObserver
}

// NewObservableConverter wraps a with an observer.
func NewObservableConverter(a *Automaton, observer ConversionObserver) *ObservableConverter {
	return &ObservableConverter{automaton: a, observer: observer}
}

func (c *ObservableConverter) observe(name string, fn func() *Automaton) *Automaton {
	c.observer.OnConversionStart(name, c.automaton.Size())
	start := time.Now()
	out := fn()
	c.observer.OnConversionComplete(name, c.automaton.Size(), out.Size(), time.Since(start))
	return out
}

// SingleSymbolForm observes automaton.SingleSymbolForm.
func (c *ObservableConverter) SingleSymbolForm() *Automaton {
	return c.observe("single_symbol_form", c.automaton.SingleSymbolForm)
}

// DeterministicForm observes automaton.DeterministicForm.
func (c *ObservableConverter) DeterministicForm() *Automaton {
	return c.observe("deterministic_form", c.automaton.DeterministicForm)
}

// CompleteDeterministicForm observes automaton.CompleteDeterministicForm.
func (c *ObservableConverter) CompleteDeterministicForm() *Automaton {
	return c.observe("complete_deterministic_form", c.automaton.CompleteDeterministicForm)
}

// MinimalCompleteDeterministicForm observes
// automaton.MinimalCompleteDeterministicForm.
func (c *ObservableConverter) MinimalCompleteDeterministicForm() *Automaton {
	return c.observe("minimal_complete_deterministic_form", c.automaton.MinimalCompleteDeterministicForm)
}

// Apply observes an arbitrary named ConversionFunc, for callers (such as a
// CLI driven by ConversionRegistry) that select a conversion by name at
// runtime instead of calling one of the typed methods above directly.
func (c *ObservableConverter) Apply(name string, fn ConversionFunc) *Automaton {
	return c.observe(name, func() *Automaton { return fn(c.automaton) })
}
